// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"
)

// AliasMap - map an option key to the key it stands for
type AliasMap map[string]string

// OptionsMap - every value given to each option key
type OptionsMap map[string][]string

// Table - the result of parsing one argument list
type Table struct {
	lock sync.RWMutex

	log     *logger.L
	aliases AliasMap

	values    map[string]string
	multi     OptionsMap
	arguments []string
}

// a negation waiting for all explicit options to be known
type negation struct {
	base  string
	value string
}

// New - create an empty option table
//
// log and aliases are optional
func New(log *logger.L, aliases AliasMap) *Table {
	return &Table{
		log:       log,
		aliases:   aliases,
		values:    make(map[string]string),
		multi:     make(OptionsMap),
		arguments: []string{},
	}
}

// SetLogger - change the channel used for debug output, nil disables
func (t *Table) SetLogger(log *logger.L) {
	t.lock.Lock()
	t.log = log
	t.lock.Unlock()
}

// ParseOS - parse the options from the OS command-line and return
// the program name
func (t *Table) ParseOS() string {
	t.Parse(os.Args[1:])
	return filepath.Base(os.Args[0])
}

// Parse - replace the table contents with the options from inputs
//
// inputs must not include the program name
func (t *Table) Parse(inputs []string) {

	values := make(map[string]string)
	multi := make(OptionsMap)
	negations := make([]negation, 0, 4)

	n := len(inputs)
loop:
	for i, item := range inputs {

		// end of options
		if 0 == len(item) || '-' != item[0] {
			n = i
			break loop
		}

		if strings.HasPrefix(item, "--") {
			item = item[1:]
		}

		name := item
		value := ""
		s := strings.SplitN(item, "=", 2)
		if 2 == len(s) {
			name = s[0]
			value = s[1]
		}
		name = t.canonical(name)

		if base, ok := t.negated(name); ok {
			negations = append(negations, negation{base: base, value: value})
			continue loop
		}

		values[name] = value
		multi[name] = append(multi[name], value)
	}

	// explicit options always beat negations
	fromNegation := make(map[string]bool)
	for _, neg := range negations {
		if _, ok := values[neg.base]; ok && !fromNegation[neg.base] {
			continue
		}
		value := "0"
		if "0" == neg.value {
			value = "1"
		}
		values[neg.base] = value
		multi[neg.base] = append(multi[neg.base], value)
		fromNegation[neg.base] = true
	}

	arguments := make([]string, len(inputs)-n)
	copy(arguments, inputs[n:])

	t.lock.Lock()
	defer t.lock.Unlock()

	t.values = values
	t.multi = multi
	t.arguments = arguments

	if nil != t.log {
		for name, value := range values {
			t.log.Debugf("option: %q = %q", name, value)
		}
		t.log.Infof("parsed options: %d  arguments: %d", len(values), len(arguments))
	}
}

// apply the alias table
func (t *Table) canonical(name string) string {
	if newName, ok := t.aliases[name]; ok {
		return newName
	}
	return name
}

// "-noX" targets "-X", a bare "-no" is an ordinary option
func (t *Table) negated(name string) (string, bool) {
	if len(name) < 4 || '-' != name[0] || !strings.HasPrefix(name[1:], "no") {
		return "", false
	}
	return t.canonical("-" + name[3:]), true
}
