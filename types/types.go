package types

// CrateName は補助クレートの論理名を表す。
type CrateName string

// SourcePath はクレートのソースファイルのパスを表す。
type SourcePath string

// LibPath はコンパイル済みライブラリの探索パスを表す。
type LibPath string
