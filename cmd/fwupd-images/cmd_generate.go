package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fwupd/fwupd-images/catalog"
	"github.com/fwupd/fwupd-images/common/config"
	"github.com/fwupd/fwupd-images/common/file"
	"github.com/fwupd/fwupd-images/common/i18n"
	"github.com/fwupd/fwupd-images/compression"
	"github.com/fwupd/fwupd-images/generator"
	"github.com/fwupd/fwupd-images/raster"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

const (
	exitFailure = 1

	// exitMissingFont is the status build systems check for when no usable font is installed.
	exitMissingFont = 2
)

var (
	localeDir   string
	label       string
	linguasPath string
	domain      string
	compressArg string

	generateFonts     []string
	generateWorkers   int
	generateLanguages string
	generateSelect    bool
	generateProgress  bool
)

func initGenerateFlags() {
	flags := rootCmd.Flags()
	flags.StringVar(&localeDir, "localedir", "", i18n.I18nMsg.App.FlagLocaleDir)
	flags.StringVar(&label, "label", "", i18n.I18nMsg.App.FlagLabel)
	flags.StringVar(&linguasPath, "linguas", "", i18n.I18nMsg.App.FlagLinguas)
	flags.StringVar(&domain, "domain", catalog.DefaultDomain, i18n.I18nMsg.App.FlagDomain)
	flags.StringVarP(&compressArg, "compression", "c", "gzip", i18n.I18nMsg.App.FlagCompression)
	flags.StringArrayVarP(&generateFonts, "font", "f", nil, i18n.I18nMsg.App.FlagFont)
	flags.IntVarP(&generateWorkers, "workers", "w", 1, i18n.I18nMsg.App.FlagWorkers)
	flags.StringVarP(&generateLanguages, "languages", "l", "", i18n.I18nMsg.App.FlagLanguages)
	flags.BoolVarP(&generateSelect, "select", "s", false, i18n.I18nMsg.App.FlagSelect)
	flags.BoolVarP(&generateProgress, "progress", "p", false, i18n.I18nMsg.App.FlagProgress)

	for _, name := range []string{"localedir", "label", "linguas"} {
		_ = rootCmd.MarkFlagRequired(name)
	}
}

func runGenerate(cmd *cobra.Command, args []string) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", elapsed)
	}()

	compType, err := compression.ParseType(compressArg)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.App.ErrorBadCompression, err)
	}

	languages, err := loadLanguages(linguasPath)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToReadLinguas, err)
	}
	if generateSelect {
		languages, err = selectLanguagesInteractively(languages)
		if err != nil {
			log.Fatal(err)
		}
	}

	fonts, err := raster.LoadFonts(generateFonts)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToLoadFont, err)
	}

	g, err := generator.New(generator.Options{
		LocaleDir:   localeDir,
		Label:       label,
		Languages:   languages,
		Domain:      domain,
		Fonts:       fonts,
		Compression: compType,
		Workers:     generateWorkers,
	})
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToCreateGenerator, err)
	}
	defer g.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := config.LoadBuildEnv()
	var (
		progress *mpb.Progress
		bar      *mpb.Bar
		barMu    sync.Mutex
	)
	if generateProgress {
		progress = mpb.New(mpb.WithWidth(60))
	}

	progressCallback := func(pi generator.ProgressInfo) {
		if progress == nil {
			if pi.Status == generator.StatusWritten {
				fmt.Printf(i18n.I18nMsg.Generate.Writing+"\n", file.DisplayPath(pi.Job.Path, env.DestDir, env.BuildRoot))
			}
			return
		}

		barMu.Lock()
		defer barMu.Unlock()
		if bar == nil {
			bar = progress.AddBar(int64(pi.Total),
				mpb.PrependDecorators(
					decor.Name(label, decor.WCSyncSpaceR),
				),
				mpb.AppendDecorators(
					decor.Percentage(decor.WC{W: 5}),
					decor.Counters(0, " | %d/%d"),
					decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 6}, decor.WCSyncSpace),
					decor.AverageSpeed(0, fmt.Sprintf(" | %%.2f %s", i18n.I18nMsg.Generate.ImagesSuffix)),
				),
			)
		}
		bar.Increment()
	}

	result, err := g.Generate(ctx, progressCallback)
	if progress != nil {
		if bar != nil && err != nil {
			bar.Abort(false)
		}
		progress.Wait()
	}

	switch exitCode(err) {
	case exitMissingFont:
		fmt.Println(i18n.I18nMsg.Common.ErrorMissingFont)
		log.Print(err)
		os.Exit(exitMissingFont)
	case exitFailure:
		log.Fatalf(i18n.I18nMsg.Generate.ErrorFailedGenerate, err)
	}

	if result.Written == 0 {
		fmt.Println(i18n.I18nMsg.Generate.NothingToDo)
		return
	}
	fmt.Printf(i18n.I18nMsg.Generate.GenerationCompleted+"\n", result.Written, result.Existing)
}

// exitCode maps a generation error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, raster.ErrMissingFont):
		return exitMissingFont
	default:
		return exitFailure
	}
}

// loadLanguages reads LINGUAS and applies the --languages filter.
func loadLanguages(path string) ([]string, error) {
	languages, err := catalog.ReadLinguas(path)
	if err != nil {
		return nil, err
	}
	return filterLanguages(languages, generateLanguages), nil
}

// filterLanguages keeps the languages named in the comma separated list,
// in LINGUAS order. An empty list keeps everything. The source language is
// always kept.
func filterLanguages(languages []string, list string) []string {
	if strings.TrimSpace(list) == "" {
		return languages
	}
	wanted := make(map[string]bool)
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			wanted[name] = true
		}
	}

	var filtered []string
	for _, lang := range languages {
		if wanted[lang] || lang == catalog.SourceLanguage {
			filtered = append(filtered, lang)
		}
	}
	return filtered
}

// selectLanguagesInteractively shows an interactive language selector using survey
func selectLanguagesInteractively(languages []string) ([]string, error) {
	if len(languages) == 0 {
		return nil, errors.New(i18n.I18nMsg.Generate.NoLanguagesSelected)
	}

	prompt := &survey.MultiSelect{
		Message:  i18n.I18nMsg.Generate.InteractiveSelection,
		Options:  languages,
		Default:  languages,
		PageSize: 15,
	}

	var result []string
	if err := survey.AskOne(prompt, &result); err != nil {
		return nil, fmt.Errorf(i18n.I18nMsg.Generate.SelectionCancelled, err)
	}
	if len(result) == 0 {
		return nil, errors.New(i18n.I18nMsg.Generate.NoLanguagesSelected)
	}

	// keep LINGUAS order regardless of the order of selection
	return filterLanguages(languages, strings.Join(result, ",")), nil
}
