package main

import (
	"fmt"
	"runtime"

	"github.com/fwupd/fwupd-images/common/i18n"
	"github.com/fwupd/fwupd-images/compression"
	"github.com/fwupd/fwupd-images/constant"
	"github.com/spf13/cobra"
)

func initVersionCmd() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: i18n.I18nMsg.App.VersionCmdShort,
		Long:  i18n.I18nMsg.App.VersionCmdLong,
		Args:  cobra.NoArgs,
		Run:   runVersion,
	}
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("%s\n", i18n.I18nMsg.App.VersionTitle)
	fmt.Printf("%s: %s(%s)\n", i18n.I18nMsg.App.VersionLabel, constant.Version, constant.BuildTime)
	fmt.Printf("%s: %s\n", i18n.I18nMsg.App.GoVersionLabel, runtime.Version())
	fmt.Printf("%s: %s/%s\n", i18n.I18nMsg.App.PlatformLabel, runtime.GOOS, runtime.GOARCH)

	fmt.Printf("\n%s:\n", i18n.I18nMsg.App.CompressionLabel)
	m := compression.NewManager()
	defer m.Close()
	info := m.ImplementationInfo()
	for _, t := range m.SupportedTypes() {
		marker := ""
		if t == compression.TypeGzip {
			marker = fmt.Sprintf(" (%s)", i18n.I18nMsg.App.DefaultMarker)
		}
		fmt.Printf("  %-8s: %s%s\n", t, info[t], marker)
	}
}
