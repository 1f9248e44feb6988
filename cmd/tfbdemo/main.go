package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Short:        "tfbdemo draws a test card on the Linux framebuffer",
	Long:         "tfbdemo draws a test card on the Linux framebuffer, then decodes and echoes keypresses until q is pressed",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(demo)
	},
}

var (
	debug       bool
	verbose     bool
	fbDevice    string
	ttyDevice   string
	noShadow    bool
	keepConsole bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, `debug`, false, `debug errors`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, `verbose`, `v`, false, `log acquisition steps to stderr`)
	rootCmd.PersistentFlags().StringVar(&fbDevice, `fb`, ``, `framebuffer device, $FRAMEBUFFER or /dev/fb0 if empty`)
	rootCmd.PersistentFlags().StringVar(&ttyDevice, `tty`, ``, `terminal device, the controlling terminal if empty`)
	rootCmd.PersistentFlags().BoolVar(&noShadow, `no-shadow`, false, `draw directly into the mapped device memory`)
	rootCmd.PersistentFlags().BoolVar(&keepConsole, `keep-console`, false, `do not switch the console to graphics mode`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(fn func() error) {
	if fn == nil {
		return
	}
	err := fn()
	if err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
			fmt.Println(stackFramer.ErrorStack())
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
