package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/nepal-utilities/backend/internal/cli"
	"github.com/nepal-utilities/backend/internal/models"
)

func main() {
	dir := flag.String("dir", "data", "Directory holding B.json and K.json")
	category := flag.String("category", "B", "Licence category (B or K)")
	lang := flag.String("lang", "en", "Question language (en or ne)")
	minutes := flag.Int("minutes", 0, "Time limit in minutes (default 30)")
	flag.Parse()

	cat, ok := models.ParseCategory(*category)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", *category)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := cli.Options{Dir: *dir, Category: cat, Language: models.Language(*lang), TimeLimit: *minutes}
	if err := cli.Run(ctx, os.Stdin, os.Stdout, opts); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
