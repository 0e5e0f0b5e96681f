package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/joinery-estimator-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
       __      _                          ______      __  _                 __
      / /___  (_)___  ___  _______  __   / ____/____ / /_(_)___ ___  ____ _/ /____
 __  / / __ \/ / __ \/ _ \/ ___/ / / /  / __/ / ___// __/ / __ '__ \/ __ '/ __/ _ \
/ /_/ / /_/ / / / / /  __/ /  / /_/ /  / /___(__  )/ /_/ / / / / / / /_/ / /_/  __/
\____/\____/_/_/ /_/\___/_/   \__, /  /_____/____/ \__/_/_/ /_/ /_/\__,_/\__/\___/
                             /____/
        `
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(yellow(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(cyan(fmt.Sprintf("Joinery Estimator CLI (v%s)", formattedVersion)))
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	version.CheckLatestVersion(currentVersion)
}
