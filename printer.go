package FHEAES

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"runtime"
	"strings"
)

// DEBUG for turning debug logs on/off
const DEBUG = false
const MeMStat = true
const PREFIX = "->> "

type logger struct {
	debug bool
}

func NewLogger(debug bool) Logger {
	return &logger{
		debug: debug,
	}
}

type Logger interface {
	PrintMessage(message string)
	PrintMessages(messages ...interface{})
	PrintFormatted(format string, args ...interface{})
	PrintBlock(name string, block []byte)
	PrintHeader(header string)
	PrintMemUsage(name string)
}

func (l logger) PrintMessage(message string) {
	if l.debug {
		fmt.Print(PREFIX)
		fmt.Printf("%s", message)
		fmt.Println()
	}
}

func (l logger) PrintMessages(messages ...interface{}) {
	if l.debug {
		fmt.Print(PREFIX)
		for _, message := range messages {
			fmt.Print(message)
		}
		fmt.Println()
	}
}

func (l logger) PrintFormatted(format string, args ...interface{}) {
	if l.debug {
		fmt.Print(PREFIX)
		fmt.Printf(format, args...)
		fmt.Println()
	}
}

// PrintBlock prints a block as lower case hex
func (l logger) PrintBlock(name string, block []byte) {
	if l.debug {
		fmt.Print(PREFIX)
		fmt.Printf("%-12s %s (%d bytes)", name+":", hex.EncodeToString(block), len(block))
		fmt.Println()
	}
}

func (l logger) PrintHeader(header string) {
	fmt.Println(fmt.Sprintf("=== ----\t\t\t %s \t\t\t---- ===", header))
}

// HandleError prints the error and panics if it isn't nil
func HandleError(err error) {
	if err != nil {
		fmt.Printf("|-> Error: %s\n", err.Error())
		panic("=== Panic\n ")
	}
}

// PrintMemUsage outputs the current, total and OS memory being used.
// For info on each, see: https://golang.org/pkg/runtime/#MemStats
func (l logger) PrintMemUsage(name string) {
	if !MeMStat || !l.debug {
		return
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mb := 1e6
	alloc := float64(m.Alloc) / mb
	tAlloc := float64(m.TotalAlloc) / mb
	mSys := float64(m.Sys) / mb
	buf := new(strings.Builder)
	width := 15 + 7
	_, err := fmt.Fprintf(buf, "|-> %-*s", width, name)
	HandleError(err)
	buf.WriteByte('\t')
	prettyPrint(buf, alloc, "MB")
	buf.WriteByte('\t')
	prettyPrint(buf, tAlloc, "MB")
	buf.WriteByte('\t')
	prettyPrint(buf, mSys, "MB")
	fmt.Println(buf)
}

// Helps to print the MemStats
func prettyPrint(w io.Writer, x float64, unit string) {
	var format string
	switch y := math.Abs(x); {
	case y == 0 || y >= 0.99995:
		format = "%10.3f %s"
	case y >= 0.099995:
		format = "%15.4f %s"
	case y >= 0.0099995:
		format = "%16.5f %s"
	default:
		format = "%18.7f %s"
	}
	_, err := fmt.Fprintf(w, format, x, unit)
	HandleError(err)
}
