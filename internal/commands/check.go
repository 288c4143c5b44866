package commands

import (
	"fmt"
	"io"

	"github.com/klabast/wb-services/calendar-api/internal/app"
)

// Check loads the data file strictly and prints every invariant violation.
// It returns the number of violations found.
func Check(dataFile string, out io.Writer) (int, error) {
	store := app.NewFileStore(dataFile)
	events, err := store.LoadStrict()
	if err != nil {
		return 0, err
	}

	violations := app.CheckEvents(events)
	for _, v := range violations {
		fmt.Fprintln(out, v)
	}
	fmt.Fprintf(out, "%d events, %d problems in %s\n", len(events), len(violations), dataFile)
	return len(violations), nil
}
