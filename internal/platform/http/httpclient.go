// Package http は上流の株価APIを呼び出すための net/http クライアントを組み立てます。
package http

import (
	"net"
	"net/http"
	"time"
)

// ClientOptions は上流APIクライアントのトランスポート設定です。ゼロ値の項目はデフォルト値になります。
type ClientOptions struct {
	Timeout             time.Duration // リクエスト全体（接続からボディ読み込みまで）
	DialTimeout         time.Duration
	TLSHandshakeTimeout time.Duration
	MaxIdleConnsPerHost int
}

func (o ClientOptions) withDefaults() ClientOptions {
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	if o.DialTimeout <= 0 {
		o.DialTimeout = 5 * time.Second
	}
	if o.TLSHandshakeTimeout <= 0 {
		o.TLSHandshakeTimeout = 5 * time.Second
	}
	if o.MaxIdleConnsPerHost <= 0 {
		o.MaxIdleConnsPerHost = 10
	}
	return o
}

// NewHTTPClient は上流APIの呼び出しに使う http.Client を作成します。
// 呼び出し先は1ホストだけなので、ホストあたりのアイドル接続を多めに保持します。
// http.DefaultClient にはタイムアウトがないため使いません。
func NewHTTPClient(opts ClientOptions) *http.Client {
	opts = opts.withDefaults()
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   opts.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        opts.MaxIdleConnsPerHost * 2,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: opts.TLSHandshakeTimeout,
		ForceAttemptHTTP2:   true,
	}
	return &http.Client{Timeout: opts.Timeout, Transport: t}
}
