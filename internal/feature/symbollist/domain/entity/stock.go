// Package entity defines the domain models for the symbollist feature.
package entity

// Stock は一覧に表示する銘柄を表します。
// 上流APIから取得した後は変更しません。
type Stock struct {
	Symbol string // 銘柄コード（例: "600519"）
	Name   string // 表示名（例: "贵州茅台"）
}
