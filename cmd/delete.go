package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a record by id",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return fmt.Errorf("invalid record id %q", args[0])
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ListAll()
	if err != nil {
		return err
	}
	var target *model.Record
	for i := range records {
		if records[i].ID == id {
			target = &records[i]
			break
		}
	}
	if target == nil {
		info("  No record with id %d\n", id)
		return nil
	}

	if err := st.Delete(id); err != nil {
		return err
	}
	log.Debug().Int64("id", id).Msg("record deleted")
	fmt.Printf("  Deleted #%d: %s on %s\n", id, cli.FormatLiters(target.Liters), model.DateKey(target.Date))
	return nil
}
