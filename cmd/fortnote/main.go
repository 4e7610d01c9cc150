package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-fort-note/internal/cli"
	"github.com/MKhiriev/go-fort-note/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	app := cli.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	if err := app.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "fortnote:", err)
		os.Exit(cli.ExitCode(err))
	}
}
