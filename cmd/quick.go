package cmd

import (
	"io"
	"log"
	"time"

	"github.com/jaffee/commandeer"
	"github.com/salesetl/datagen/usecase/dataset"
	"github.com/spf13/cobra"
)

// QuickMain is wrapped by NewQuickCommand and only exported for testing purposes.
var QuickMain *dataset.Main

// NewQuickCommand returns a new cobra command wrapping QuickMain.
func NewQuickCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var err error
	QuickMain = dataset.NewQuickMain()
	quickCommand := &cobra.Command{
		Use:   "quick",
		Short: "Generate a small dataset for local smoke testing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			err = QuickMain.Run()
			if err != nil {
				return err
			}
			log.Println("Done: ", time.Since(start))
			return nil
		},
	}
	flags := quickCommand.Flags()
	err = commandeer.Flags(flags, QuickMain)
	if err != nil {
		panic(err)
	}
	return quickCommand
}

func init() {
	subcommandFns["quick"] = NewQuickCommand
}
