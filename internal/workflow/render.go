package workflow

import (
	"strings"
	"time"

	"github.com/gorewood/git-home/internal/git"
	"github.com/gorewood/git-home/internal/output"
)

// DateLayout formats history timestamps.
const DateLayout = "2006-01-02 15:04:05 -07:00"

// UpToDate is printed by status when nothing is staged or modified.
const UpToDate = "Nothing to commit, git home is up to date."

func renderStatus(printer *output.Printer, unstaged, staged []string) {
	if len(unstaged) == 0 && len(staged) == 0 {
		printer.Println(UpToDate)
		return
	}

	if len(unstaged) > 0 {
		printer.Heading("Changes not staged for commit:")
		for _, path := range unstaged {
			printer.Warning("  " + path)
		}
	}
	if len(unstaged) > 0 && len(staged) > 0 {
		printer.Println()
	}
	if len(staged) > 0 {
		printer.Heading("Changes to be committed:")
		for _, path := range staged {
			printer.Success("  " + path)
		}
	}
}

func renderEntry(printer *output.Printer, entry git.Entry, loc *time.Location) {
	printer.Println("commit " + entry.ID)
	printer.Println("Author: " + entry.Author + " <" + entry.Email + ">")
	printer.Println("Date: " + entry.When.In(loc).Format(DateLayout))
	printer.Println()
	for _, line := range strings.Split(strings.TrimRight(entry.Message, "\n"), "\n") {
		if line == "" {
			printer.Println()
			continue
		}
		printer.Println("   " + line)
	}
	printer.Println()
}
