package errs

import "fmt"

// Attempt はfを監視付きの別ゴルーチンで実行し、panicを失敗値に変換して返す。
// 外部バックエンドの内部アサーションや、実行したユーザコードの異常終了を
// メインループへ伝播させないための境界。
// fが通常どおりerrorを返した場合はそれをそのまま返す。
func Attempt(f func() error) error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- NewRuntimeError(fmt.Sprintf("%v", r))
			}
		}()
		done <- f()
	}()
	return <-done
}
