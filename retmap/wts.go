// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goki/ki/indent"
)

// WtsPrec is the precision for weight values written to JSON weight files.
const WtsPrec = 6

// SaveWtsJSON saves the synapse matrix to a JSON-formatted file.  If the
// filename has a .gz extension the file is gzip compressed.
func (sm *SynapseMatrix) SaveWtsJSON(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	if filepath.Ext(filename) == ".gz" {
		gzw := gzip.NewWriter(fp)
		defer gzw.Close()
		return sm.WriteWtsJSON(gzw)
	}
	return sm.WriteWtsJSON(fp)
}

// OpenWtsJSON loads the synapse matrix from a JSON-formatted file.  If
// the filename has a .gz extension the file is gzip uncompressed.
func (sm *SynapseMatrix) OpenWtsJSON(filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	if filepath.Ext(filename) == ".gz" {
		gzr, err := gzip.NewReader(fp)
		if err != nil {
			return err
		}
		defer gzr.Close()
		return sm.ReadWtsJSON(gzr)
	}
	return sm.ReadWtsJSON(fp)
}

// WriteWtsJSON writes the synapse matrix in a JSON text format, one
// weight row per tectal unit.  We build in the indentation logic to make
// it much faster and more efficient than generic marshaling.
func (sm *SynapseMatrix) WriteWtsJSON(w io.Writer) error {
	depth := 0
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("{\n"))
	depth++
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"XT\": %d,\n", sm.XT)))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"YT\": %d,\n", sm.YT)))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"XR\": %d,\n", sm.XR)))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"YR\": %d,\n", sm.YR)))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Mean\": %s,\n", strconv.FormatFloat(sm.Init.Mean, 'g', -1, 64))))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("\"Wts\": [\n"))
	depth++
	nr := sm.NRetinal()
	nt := sm.NTectal()
	for t := 0; t < nt; t++ {
		w.Write(indent.TabBytes(depth))
		w.Write([]byte("[ "))
		row := sm.Wts.Values[t*nr : (t+1)*nr]
		for r, v := range row {
			w.Write([]byte(strconv.FormatFloat(v, 'g', WtsPrec, 64)))
			if r < nr-1 {
				w.Write([]byte(", "))
			}
		}
		if t < nt-1 {
			w.Write([]byte(" ],\n"))
		} else {
			w.Write([]byte(" ]\n"))
		}
	}
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("]\n"))
	depth--
	w.Write(indent.TabBytes(depth))
	_, err := w.Write([]byte("}\n"))
	return err
}

// wtsJSON is the file format read back by ReadWtsJSON.
type wtsJSON struct {
	XT   int
	YT   int
	XR   int
	YR   int
	Mean float64
	Wts  [][]float64
}

// ReadWtsJSON reads a synapse matrix written by WriteWtsJSON,
// reconfiguring the matrix to the dimensions recorded in the file.
func (sm *SynapseMatrix) ReadWtsJSON(r io.Reader) error {
	var wj wtsJSON
	if err := json.NewDecoder(r).Decode(&wj); err != nil {
		return fmt.Errorf("retmap: reading weights: %w", err)
	}
	if wj.XT < 2 || wj.YT < 2 || wj.XR < 2 || wj.YR < 2 {
		return fmt.Errorf("retmap: weights file has invalid dimensions: tectal %dx%d retinal %dx%d", wj.XT, wj.YT, wj.XR, wj.YR)
	}
	if len(wj.Wts) != wj.XT*wj.YT {
		return fmt.Errorf("retmap: weights file has %d rows, want %d", len(wj.Wts), wj.XT*wj.YT)
	}
	sm.Config(wj.XT, wj.YT, wj.XR, wj.YR)
	sm.Init.Mean = wj.Mean
	nr := sm.NRetinal()
	for t, row := range wj.Wts {
		if len(row) != nr {
			return fmt.Errorf("retmap: weights file row %d has %d values, want %d", t, len(row), nr)
		}
		copy(sm.Wts.Values[t*nr:(t+1)*nr], row)
	}
	return nil
}
