package version

import (
	// go:embedディレクティブ用
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/homocury/rusti/errs"
	"golang.org/x/mod/semver"
)

// VERSION は現在のrustiのバージョンを表す
const VERSION = "v0.6.0"

// PrintVersion は現在のrustiのバージョンを表示する
func PrintVersion() {
	fmt.Println("   " + VERSION)
}

type releasesInfoResponse struct {
	LatestVersion string `json:"tag_name"`
}

// IsLatestVersion は現在のrustiのバージョンが最新かどうかを判定する
func IsLatestVersion() (bool, string, error) {
	latestVersion, err := fetchLatestVersion()
	if err != nil {
		return false, "", err
	}
	return semver.Compare(VERSION, latestVersion) >= 0, latestVersion, nil
}

func fetchLatestVersion() (string, error) {
	resp, err := http.Get("https://api.github.com/repos/homocury/rusti/releases/latest")
	if err != nil {
		return "", errs.NewInternalError("failed to fetch latest release").Wrap(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			errs.HandleError(err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewInternalError("failed to read response body").Wrap(err)
	}
	var releasesInfo releasesInfoResponse
	if err := json.Unmarshal(body, &releasesInfo); err != nil {
		return "", errs.NewInternalError("failed to unmarshal response body").Wrap(err)
	}

	return releasesInfo.LatestVersion, nil
}

//go:embed latest_ver_note_ascii.txt
var latestVerNoteASCII []byte

// NoteLatest は新しいリリースが存在する場合にだけ案内を表示する。
// バージョン確認はあくまで案内であり、失敗してもREPLの起動は妨げない。
func NoteLatest() {
	isLatest, latestVersion, err := IsLatestVersion()
	if err != nil || isLatest {
		return
	}
	fmt.Printf(string(latestVerNoteASCII), latestVersion, VERSION)
}
