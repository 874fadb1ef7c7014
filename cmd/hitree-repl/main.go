// hitree-repl is an interactive demo of the hitree string set.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-shellwords"

	"github.com/phroun/hitree"
)

// REPL holds the state of the interactive session.
type REPL struct {
	set    *hitree.Set[string]
	parser *shellwords.Parser
	reader *bufio.Reader
}

func main() {
	fmt.Println("hitree REPL - Indexable Ordered Set Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		set:    hitree.New[string](),
		parser: shellwords.NewParser(),
		reader: bufio.NewReader(os.Stdin),
	}

	for {
		fmt.Print("hitree> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}
		args, err := repl.parser.Parse(input)
		if err != nil {
			fmt.Printf("parse error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if !repl.handleCommand(args[0], args[1:]) {
			break
		}
	}
}

func (r *REPL) handleCommand(cmd string, args []string) bool {
	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "add":
		if len(args) == 0 {
			fmt.Println("usage: add <value>...")
			return true
		}
		added := r.set.InsertAll(args...)
		fmt.Printf("added %d of %d (len %d)\n", added, len(args), r.set.Len())

	case "del":
		if len(args) != 1 {
			fmt.Println("usage: del <value>")
			return true
		}
		if v, ok := r.set.Take(args[0]); ok {
			fmt.Printf("removed %q (len %d)\n", v, r.set.Len())
		} else {
			fmt.Println("not found")
		}

	case "delat":
		i, ok := r.parseIndex(args, "delat")
		if !ok {
			return true
		}
		if v, ok := r.set.TakeByIndex(i); ok {
			fmt.Printf("removed %q (len %d)\n", v, r.set.Len())
		} else {
			fmt.Println("index out of range")
		}

	case "at":
		i, ok := r.parseIndex(args, "at")
		if !ok {
			return true
		}
		if v, ok := r.set.GetByIndex(i); ok {
			fmt.Printf("%q\n", v)
		} else {
			fmt.Println("index out of range")
		}

	case "index":
		if len(args) != 1 {
			fmt.Println("usage: index <value>")
			return true
		}
		if i, ok := r.set.IndexOf(args[0]); ok {
			fmt.Println(i)
		} else {
			fmt.Println("not found")
		}

	case "first":
		if v, ok := r.set.TakeFirst(); ok {
			fmt.Printf("%q\n", v)
		} else {
			fmt.Println("empty")
		}

	case "last":
		if v, ok := r.set.TakeLast(); ok {
			fmt.Printf("%q\n", v)
		} else {
			fmt.Println("empty")
		}

	case "list":
		start, end := 0, r.set.Len()
		if len(args) == 2 {
			var ok1, ok2 bool
			start, ok1 = atoi(args[0])
			end, ok2 = atoi(args[1])
			if !ok1 || !ok2 {
				fmt.Println("usage: list [start end]")
				return true
			}
			if start < 0 {
				start = 0
			}
		}
		it := r.set.Range(start, end)
		for i := start; ; i++ {
			v, ok := it.Next()
			if !ok {
				break
			}
			fmt.Printf("%4d: %q\n", i, v)
		}

	case "rlist":
		it := r.set.Iter()
		for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
			fmt.Printf("%q\n", v)
		}

	case "len":
		fmt.Println(r.set.Len())

	case "drain":
		d := r.set.Drain()
		for v, ok := d.Next(); ok; v, ok = d.Next() {
			fmt.Printf("%q\n", v)
		}

	default:
		fmt.Printf("unknown command %q (try 'help')\n", cmd)
	}
	return true
}

func (r *REPL) parseIndex(args []string, cmd string) (int, bool) {
	if len(args) != 1 {
		fmt.Printf("usage: %s <index>\n", cmd)
		return 0, false
	}
	i, ok := atoi(args[0])
	if !ok {
		fmt.Printf("usage: %s <index>\n", cmd)
		return 0, false
	}
	return i, true
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func (r *REPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  add <value>...    insert values")
	fmt.Println("  del <value>       remove a value by key")
	fmt.Println("  delat <index>     remove the value at a sorted rank")
	fmt.Println("  at <index>        show the value at a sorted rank")
	fmt.Println("  index <value>     show the sorted rank of a value")
	fmt.Println("  first / last      remove and show the extremes")
	fmt.Println("  list [start end]  show values in order (optionally a rank window)")
	fmt.Println("  rlist             show values in reverse order")
	fmt.Println("  len               show the number of values")
	fmt.Println("  drain             consume and show all values in order")
	fmt.Println("  quit              exit")
}
