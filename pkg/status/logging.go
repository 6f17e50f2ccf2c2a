// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 35 // Base width for filename
)

// 🎯 FormatFileResult formats a decrypt result for display. With noColor
// the line carries no ANSI codes regardless of the terminal.
func FormatFileResult(result FileResult, noColor bool) string {
	paint := func(attr color.Attribute, s string) string {
		c := color.New(attr)
		if noColor {
			c.DisableColor()
		}
		return c.Sprint(s)
	}

	var prefix, detail string
	if result.Err != nil {
		prefix = paint(color.FgRed, "✗")
		detail = paint(color.FgRed, result.Err.Error())
	} else {
		prefix = paint(color.FgGreen, "✓")
		detail = paint(color.FgHiBlack, "-> "+result.Destination)
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, filepath.Base(result.Source))

	return fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		detail,
	)
}
