// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package airquality provides the daily air quality measurements
// in New York, May to September 1973: 153 rows of ozone (ppb),
// solar radiation (lang), wind (mph), temperature (F), month and day.
// Missing values are NaN.
package airquality

import (
	"embed"

	"cogentcore.org/lowess/tensor/table"
)

//go:embed airquality.csv
var content embed.FS

// Filename is the name of the embedded CSV file.
const Filename = "airquality.csv"

// Names are the column names, in order.
var Names = []string{"Ozone", "Solar.R", "Wind", "Temp", "Month", "Day"}

// Open returns a new table with the dataset.
func Open() (*table.Table, error) {
	return table.OpenFS(content, Filename, table.Comma)
}
