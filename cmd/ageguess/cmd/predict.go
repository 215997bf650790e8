package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/f3rmion/ageguess/internal/agify"
	"github.com/f3rmion/ageguess/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errNoName = errors.New("a first name is required")

var predictCmd = &cobra.Command{
	Use:   "predict <name>",
	Short: "Predict an age without the TUI",
	Long: `Predict the age for a first name and print the result sentence.

Only the first word is used, exactly as in the interactive form.

Example:
  ageguess predict Anna
  ageguess predict "Anna Banan"`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log.SetOutput(io.Discard)
	if viper.GetBool("verbose") {
		log.SetOutput(cmd.ErrOrStderr())
	}

	s := session.New().Input(strings.Join(args, " "))
	s, ok := s.Submit()
	if !ok {
		return errNoName
	}

	client := agify.NewClient(cfg.Endpoint)
	log.Printf("GET %s?name=%s", client.Endpoint(), s.Name)

	prediction, err := client.Predict(cmd.Context(), s.Name)
	if err != nil {
		log.Printf("prediction failed: %v", err)
		s = s.Fail(session.ErrorMessage)
		fmt.Fprintln(cmd.ErrOrStderr(), s.Err)
		// The fixed message is the only report; cobra must not print err too.
		cmd.SilenceErrors = true
		return err
	}

	s = s.Resolve(prediction.Age)
	fmt.Fprintln(cmd.OutOrStdout(), s.Sentence())
	return nil
}
