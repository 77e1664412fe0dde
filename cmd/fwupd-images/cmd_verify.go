package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fwupd/fwupd-images/catalog"
	"github.com/fwupd/fwupd-images/common/i18n"
	"github.com/fwupd/fwupd-images/compression"
	"github.com/fwupd/fwupd-images/generator"
	"github.com/spf13/cobra"
)

func initVerifyCmd() {
	verifyCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Verify.Use,
		Short: i18n.I18nMsg.Verify.Short,
		Long:  i18n.I18nMsg.Verify.Long,
		Args:  cobra.NoArgs,
		Run:   runVerify,
	}

	flags := verifyCmd.Flags()
	flags.StringVar(&localeDir, "localedir", "", i18n.I18nMsg.App.FlagLocaleDir)
	flags.StringVar(&label, "label", "", i18n.I18nMsg.App.FlagLabel)
	flags.StringVar(&linguasPath, "linguas", "", i18n.I18nMsg.App.FlagLinguas)
	flags.StringVar(&domain, "domain", catalog.DefaultDomain, i18n.I18nMsg.App.FlagDomain)
	flags.StringVarP(&compressArg, "compression", "c", "gzip", i18n.I18nMsg.App.FlagCompression)
	flags.StringVarP(&generateLanguages, "languages", "l", "", i18n.I18nMsg.App.FlagLanguages)

	for _, name := range []string{"localedir", "label", "linguas"} {
		_ = verifyCmd.MarkFlagRequired(name)
	}

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) {
	compType, err := compression.ParseType(compressArg)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.App.ErrorBadCompression, err)
	}

	languages, err := loadLanguages(linguasPath)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToReadLinguas, err)
	}

	g, err := generator.New(generator.Options{
		LocaleDir:   localeDir,
		Label:       label,
		Languages:   languages,
		Domain:      domain,
		Compression: compType,
	})
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToCreateGenerator, err)
	}
	defer g.Close()

	checks, err := g.Verify()
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Verify.ErrorVerifyFailed, err)
	}

	var valid, missing, invalid int
	for _, c := range checks {
		switch {
		case c.Missing:
			missing++
			fmt.Printf(i18n.I18nMsg.Verify.ImageMissing+"\n", c.Job.Path)
		case c.Err != nil:
			invalid++
			fmt.Printf(i18n.I18nMsg.Verify.ImageInvalid+"\n", c.Job.Path, c.Err)
		default:
			valid++
			fmt.Printf(i18n.I18nMsg.Verify.ImageOK+"\n", c.Job.Path, c.Width, c.Height, generator.FormatSize(c.Size))
		}
	}
	fmt.Printf(i18n.I18nMsg.Verify.Summary+"\n", valid, missing, invalid)

	if missing > 0 || invalid > 0 {
		log.Printf(i18n.I18nMsg.Verify.ErrorInvalidImages, missing+invalid)
		os.Exit(1)
	}
}
