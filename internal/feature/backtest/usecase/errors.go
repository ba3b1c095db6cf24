package usecase

import "errors"

var (
	// ErrSymbolRequired は銘柄コードが空の場合に返されます。
	ErrSymbolRequired = errors.New("symbol is required")
	// ErrInvalidDateRange は日付がYYYYMMDD形式でない、または開始日が終了日より後の場合に返されます。
	ErrInvalidDateRange = errors.New("dates must be YYYYMMDD and start_date must not be after end_date")
	// ErrNoData は指定期間に時系列が1件もない場合に返されます。
	ErrNoData = errors.New("no data found for the specified parameters")
)
