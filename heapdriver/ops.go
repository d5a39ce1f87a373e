// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapdriver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

// OpKind identifies a heap operation.
type OpKind int

// The operations that can appear in an operation log.
const (
	Insert OpKind = iota
	ExtractTop
	Remove
	AugmentKey
	numOps
)

var opNames = [numOps]string{"Insert", "ExtractTop", "Remove", "AugmentKey"}

// Kinds returns all of the operation kinds in the order used for reporting.
func Kinds() []OpKind {
	return []OpKind{Insert, ExtractTop, Remove, AugmentKey}
}

// String implements fmt.Stringer.
func (k OpKind) String() string {
	if k < 0 || k >= numOps {
		return "OpKind(" + strconv.Itoa(int(k)) + ")"
	}
	return opNames[k]
}

// Op represents a single line of an operation log. ID names the element
// that the operation applies to, Value is the key for Insert and the
// magnitude of the change for AugmentKey.
type Op struct {
	Kind  OpKind
	ID    int
	Value int
}

// ErrInvalidOp is returned for lines that cannot be parsed.
var ErrInvalidOp = errors.New("invalid operation")

// ParseOp parses a single line of an operation log, which has one of
// the following forms:
//
//	Insert:<id>,<key>
//	ExtractTop:
//	Remove:<id>
//	AugmentKey:<id>,<delta>
func ParseOp(line string) (Op, error) {
	name, args, ok := strings.Cut(strings.TrimSpace(line), ":")
	if !ok {
		return Op{}, fmt.Errorf("%w: missing ':' in %q", ErrInvalidOp, line)
	}
	switch name {
	case "Insert":
		id, key, err := parsePair(args)
		if err != nil {
			return Op{}, err
		}
		return Op{Kind: Insert, ID: id, Value: key}, nil
	case "ExtractTop":
		if len(args) != 0 {
			return Op{}, fmt.Errorf("%w: unexpected arguments %q", ErrInvalidOp, args)
		}
		return Op{Kind: ExtractTop}, nil
	case "Remove":
		id, err := parseInt(args)
		if err != nil {
			return Op{}, err
		}
		return Op{Kind: Remove, ID: id}, nil
	case "AugmentKey":
		id, delta, err := parsePair(args)
		if err != nil {
			return Op{}, err
		}
		return Op{Kind: AugmentKey, ID: id, Value: delta}, nil
	}
	return Op{}, fmt.Errorf("%w: unrecognised operation %q", ErrInvalidOp, name)
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidOp, err)
	}
	return v, nil
}

func parsePair(s string) (int, int, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: missing ',' in %q", ErrInvalidOp, s)
	}
	x, err := parseInt(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := parseInt(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// String returns the operation in operation log format.
func (op Op) String() string {
	switch op.Kind {
	case Insert, AugmentKey:
		return fmt.Sprintf("%v:%v,%v", op.Kind, op.ID, op.Value)
	case Remove:
		return fmt.Sprintf("%v:%v", op.Kind, op.ID)
	}
	return op.Kind.String() + ":"
}

// ReadOps reads an operation log. Blank lines are ignored. All of the
// lines that cannot be parsed are reported, each annotated with its
// line number.
func ReadOps(rd io.Reader) ([]Op, error) {
	var ops []Op
	errs := &errors.M{}
	sc := bufio.NewScanner(rd)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if len(strings.TrimSpace(text)) == 0 {
			continue
		}
		op, err := ParseOp(text)
		if err != nil {
			errs.Append(errors.Annotate(fmt.Sprintf("line %v", line), err))
			continue
		}
		ops = append(ops, op)
	}
	errs.Append(sc.Err())
	return ops, errs.Err()
}

// WriteOps writes ops in operation log format, one per line.
func WriteOps(wr io.Writer, ops []Op) error {
	bw := bufio.NewWriter(wr)
	for _, op := range ops {
		if _, err := fmt.Fprintln(bw, op.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
