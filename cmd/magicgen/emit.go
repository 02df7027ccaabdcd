package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"

	"github.com/daystram/magicgen/magic"
	"github.com/daystram/magicgen/position"
)

func emitTo(path, pkg string, cfg *runConfig, entries []*magic.Entry) error {
	if path == "" {
		return emit(os.Stdout, pkg, cfg.name, cfg.id, cfg.seed, cfg.dirs, entries)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := emit(f, pkg, cfg.name, cfg.id, cfg.seed, cfg.dirs, entries); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// emit writes entries as Go source: one magic record per square and a single
// packed attack array addressed by each record's Offset.
func emit(w io.Writer, pkg, name, runID string, seed uint64, dirs []position.Direction, entries []*magic.Entry) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by magicgen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "// run=%s seed=%d directions=%s\n\n", runID, seed, dirsString(dirs))
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	fmt.Fprintf(&buf, "// %sMagic addresses %sAttacks[Offset+((occupied&Mask)*Number)>>Shift].\n", name, name)
	fmt.Fprintf(&buf, "type %sMagic struct {\n\tMask uint64\n\tNumber uint64\n\tShift uint8\n\tOffset uint32\n}\n\n", name)

	fmt.Fprintf(&buf, "var %sMagics = [%d]%sMagic{\n", name, len(entries), name)
	var offset uint32
	for _, e := range entries {
		fmt.Fprintf(&buf, "\t{Mask: 0x%016x, Number: 0x%016x, Shift: %d, Offset: %d}, // %s\n",
			uint64(e.Mask), e.Number, e.Shift(), offset, e.Pos)
		offset += uint32(len(e.Table))
	}
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "var %sAttacks = [%d]uint64{\n", name, offset)
	for _, e := range entries {
		fmt.Fprintf(&buf, "\t// %s\n", e.Pos)
		for i, attack := range e.Table {
			if i%4 == 0 {
				buf.WriteString("\t")
			}
			fmt.Fprintf(&buf, "0x%016x,", uint64(attack))
			if i%4 == 3 || i == len(e.Table)-1 {
				buf.WriteString("\n")
			} else {
				buf.WriteString(" ")
			}
		}
	}
	fmt.Fprintf(&buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
