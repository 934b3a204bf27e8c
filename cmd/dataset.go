package cmd

import (
	"io"
	"log"
	"time"

	"github.com/jaffee/commandeer"
	"github.com/salesetl/datagen/usecase/dataset"
	"github.com/spf13/cobra"
)

// DatasetMain is wrapped by NewDatasetCommand and only exported for testing purposes.
var DatasetMain *dataset.Main

// NewDatasetCommand returns a new cobra command wrapping DatasetMain.
func NewDatasetCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var err error
	DatasetMain = dataset.NewMain()
	datasetCommand := &cobra.Command{
		Use:   "dataset",
		Short: "Generate the full-scale sales dataset.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			err = DatasetMain.Run()
			if err != nil {
				return err
			}
			log.Println("Done: ", time.Since(start))
			return nil
		},
	}
	flags := datasetCommand.Flags()
	err = commandeer.Flags(flags, DatasetMain)
	if err != nil {
		panic(err)
	}
	return datasetCommand
}

func init() {
	subcommandFns["dataset"] = NewDatasetCommand
}
