package command

import (
	"fmt"
	"strings"
)

// AddUsage is printed when add is called without usable arguments.
const AddUsage = `Usage:
	git home add <file>...
	git home add [-u | --update]
`

// InitUsage is printed when init is called with arguments.
const InitUsage = `Usage:
	git home init
`

// CommitUsage is printed for malformed commit arguments.
const CommitUsage = `Usage:
	git home commit [options]

Options:
	[-m | --message=]"message":
		 Commits index to working head with message.
		 Without a message, $EDITOR is opened to write one.
`

// Usage returns the general help text. storeDir describes the effective GIT_HOME_DIR.
func Usage(storeDir string) string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	b.WriteString("\tgit home [command] <args>\n")
	b.WriteString("Commands:\n")
	b.WriteString("\t    add: add a file to the git_home repo.\n")
	b.WriteString("\t status: print status of files in the index.\n")
	b.WriteString("\t   init: initialize a new home repo.\n")
	b.WriteString("\t commit: commit current index to repository.\n")
	b.WriteString("\t    log: prints a log of the last commit.\n")
	b.WriteString("\t --help: prints this help dialog.\n")
	b.WriteString("\t     --: passes any commands following the double dashes to git.\n")
	b.WriteString("\t         any command preceding the double dash will be executed first.\n")
	b.WriteString("\n")
	b.WriteString("\t\t For example, to commit your changes and then see a log of\n")
	b.WriteString("\t\t your commit history you could run:\n")
	b.WriteString("\n")
	b.WriteString("\t\t\t git home commit -m \"some message\" -- log --oneline\n")
	b.WriteString("\n")
	b.WriteString("Global Variables:\n")
	fmt.Fprintf(&b, "\tGIT_HOME_DIR: %s\n", storeDir)
	return b.String()
}
