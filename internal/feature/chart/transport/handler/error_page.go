package handler

import "html/template"

// errorPage はチャート領域にエラーメッセージを表示するページです。
// チャート本体と同じ高さのコンテナを使い、レイアウトが崩れないようにします。
var errorPage = template.Must(template.New("chart-error").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Symbol}}</title>
</head>
<body>
<div class="container">
  <div class="item" id="chart" style="width:100%;height:860px;display:flex;align-items:center;justify-content:center;color:#999;">
    <p class="chart-error">{{.Message}}</p>
  </div>
</div>
</body>
</html>
`))

type errorPageData struct {
	Symbol  string
	Message string
}
