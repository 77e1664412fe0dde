package main

import (
	"os"

	"github.com/fwupd/fwupd-images/common/i18n"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func init() {
	i18n.InitLanguage()

	rootCmd = &cobra.Command{
		Use:   "fwupd-images",
		Short: i18n.I18nMsg.App.AppDescription,
		Long:  i18n.I18nMsg.App.AppLongDescription,
		Args:  cobra.NoArgs,
		Run:   runGenerate,
	}

	initGenerateFlags()
	initVerifyCmd()
	initVersionCmd()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
