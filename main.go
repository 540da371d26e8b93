package main

import (
	"log/slog"
	"os"

	"github.com/euba/PaintApp/internal/ui"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	ui.RunApp()
}
