package stats

import (
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomobar/internal/models"
	"github.com/ayoisaiah/pomobar/internal/timeutil"
	"github.com/ayoisaiah/pomobar/internal/ui"
)

const noTasksMsg = "No tasks recorded yet. Label a focus phase with 't <task>' to track it"

// ListTasks prints the newest limit task records as a table. A limit of zero
// or less prints them all.
func ListTasks(w io.Writer, tasks []models.TaskRecord, limit int) {
	if len(tasks) == 0 {
		pterm.Info.Println(noTasksMsg)
		return
	}

	if limit > 0 && limit < len(tasks) {
		tasks = tasks[:limit]
	}

	data := [][]string{
		{"#", "DATE", "TASK", "DURATION"},
	}

	for i := range tasks {
		t := tasks[i]

		data = append(data, []string{
			strconv.Itoa(i + 1),
			t.Timestamp.Format("January 02, 2006 03:04 PM"),
			t.Name,
			ui.Green(timeutil.FormatMinutes(int(t.Duration.Minutes()))),
		})
	}

	ui.PrintTable(data, w)
}
