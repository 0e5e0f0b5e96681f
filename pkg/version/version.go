package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Valores padrão (sobrescritos por ldflags ou por build info)
var Version = "0.0.0-dev"
var Commit = ""
var BuildTime = ""

// ReleaseURL é consultada por CheckLatestVersion.
var ReleaseURL = "https://api.github.com/repos/diillson/joinery-estimator-go/releases/latest"

func init() {
	if Version != "" && Version != "0.0.0-dev" {
		return
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		applyBuildSettings(bi.Settings)
	}
}

// applyBuildSettings preenche Version, Commit e BuildTime a partir das build settings vcs.*.
func applyBuildSettings(settings []debug.BuildSetting) {
	get := func(key string) string {
		for _, s := range settings {
			if s.Key == key {
				return s.Value
			}
		}
		return ""
	}

	if rev := get("vcs.revision"); Commit == "" && len(rev) >= 7 {
		Commit = rev[:7]
	}

	if t := get("vcs.time"); BuildTime == "" && t != "" {
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	if tag := get("vcs.tag"); tag != "" {
		Version = strings.TrimPrefix(tag, "v")
		if strings.EqualFold(get("vcs.modified"), "true") {
			Version += "-dirty"
		}
	}
}

// CheckLatestVersion verifica se uma versão mais recente está disponível.
func CheckLatestVersion(currentVersion string) {
	// Versões dev não são verificadas
	if strings.HasSuffix(currentVersion, "-dev") {
		return
	}

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(ReleaseURL)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return
	}

	latestVersion := strings.TrimPrefix(release.TagName, "v")
	if IsNewer(latestVersion, currentVersion) {
		pterm.Warning.Println(fmt.Sprintf("A new version of Joinery Estimator is available: %s", latestVersion))
		pterm.Info.Println("Please update using: go install github.com/diillson/joinery-estimator-go/cmd/joinery-estimate@latest")
	}
}

// IsNewer compara versões numéricas separadas por ponto. Sufixos como "-dirty" são ignorados.
func IsNewer(latest, current string) bool {
	l, c := versionParts(latest), versionParts(current)
	for i := 0; i < len(l) || i < len(c); i++ {
		var a, b int
		if i < len(l) {
			a = l[i]
		}
		if i < len(c) {
			b = c[i]
		}
		if a != b {
			return a > b
		}
	}
	return false
}

func versionParts(v string) []int {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	var parts []int
	for _, p := range strings.Split(v, ".") {
		n, err := strconv.Atoi(p)
		if err != nil {
			break
		}
		parts = append(parts, n)
	}
	return parts
}

// FormatVersion retorna a versão formatada com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = "0.0.0-dev"
	}

	if Commit == "" {
		if BuildTime == "" {
			return fmt.Sprintf("%s (development)", ver)
		}
		return fmt.Sprintf("%s (commit: development, built at: %s)", ver, BuildTime)
	}

	if BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, Commit, BuildTime)
	}

	return fmt.Sprintf("%s (commit: %s)", ver, Commit)
}
