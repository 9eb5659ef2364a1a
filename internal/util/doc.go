// Package util provides general utility.
package util

import (
	"fmt"
	"io"
	"reflect"

	"github.com/abenz1267/stringscore/internal/common"
)

func GenerateDoc(w io.Writer) {
	fmt.Fprintln(w, "# Stringscore")
	fmt.Fprintln(w, "Scores how well a query, typically an abbreviation, matches a string.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run `stringscore -h` to get an overview of the available commandline flags and actions.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "## Configuration")
	fmt.Fprintf(w, "Read from `%s.toml` in the config dir. Every field can be overridden with `%s<FIELD>`.\n", common.Name, common.EnvPrefix)
	fmt.Fprintln(w)

	PrintConfig(w, common.DefaultConfig())
}

func PrintConfig(w io.Writer, c any) {
	fmt.Fprintln(w, "| Field | Type | Default | Description |")
	fmt.Fprintln(w, "| --- | ---- | ---- | --- |")
	printStructDesc(w, c)
	fmt.Fprintln(w)
}

func printStructDesc(w io.Writer, c any) {
	val := reflect.ValueOf(c)

	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		fmt.Fprintln(w, "Not a struct")
		return
	}

	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		fieldValue := val.Field(i)

		if field.PkgPath == "" {
			if field.Anonymous {
				printStructDesc(w, fieldValue.Interface())
				continue
			}

			name := field.Tag.Get("koanf")
			fmt.Fprintf(w, "|%s|%s|%s|%s|\n",
				name, field.Type, field.Tag.Get("default"), field.Tag.Get("desc"))
		}
	}
}
