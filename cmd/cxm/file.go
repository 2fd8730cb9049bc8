// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/pkg/errors"
)

// readFile reads a regular file completely. Devices, directories and other
// special files are refused.
func readFile(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("file %q not found", path)
		}
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, errors.Errorf("%q is not a regular file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}
	return data, nil
}

// writeFile writes data through a temporary file that is renamed to the
// target on success. An interrupted run never leaves a half-written target
// behind.
func writeFile(path string, data []byte) (err error) {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return errors.Wrapf(err, "creating %q", tmp)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	if _, err = f.Write(data); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %q", tmp)
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "renaming %q", tmp)
	}
	return nil
}
