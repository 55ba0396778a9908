package license

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/text"
)

type notice struct {
	intro   string
	license string
}

var notices = []notice{
	{
		intro: "tfsprops is licensed under the MIT License:",
		license: heredoc.Doc(`
			Copyright (c) Thomas Meckel

			Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the "Software"), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:

			The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.

			THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
		`),
	},
	{
		intro: "tfsprops uses Cobra (https://github.com/spf13/cobra), licensed under the Apache License 2.0:",
		license: heredoc.Doc(`
			Copyright 2013-2023 The Cobra Authors

			Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License. You may obtain a copy of the License at

			    http://www.apache.org/licenses/LICENSE-2.0

			Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific language governing permissions and limitations under the License.
		`),
	},
	{
		intro: "tfsprops uses pflag (https://github.com/spf13/pflag), licensed under the BSD 3-Clause License:",
		license: heredoc.Doc(`
			Copyright (c) 2012 Alex Ogier. All rights reserved.
			Copyright (c) 2012 The Go Authors. All rights reserved.

			Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

			   * Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
			   * Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
			   * Neither the name of Google Inc. nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.

			THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
		`),
	},
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "license",
		Short: "Show the licenses of tfsprops and the libraries it is built on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLicense(ctx)
		},
	}

	return cmd
}

func runLicense(ctx util.CmdContext) error {
	ios, err := ctx.IOStreams()
	if err != nil {
		return err
	}
	width := ios.TerminalWidth()

	for _, n := range notices {
		if err := block(ios, iostreams.StyleYellow, n.intro); err != nil {
			return err
		}
		if err := block(ios, iostreams.StyleGray, text.Wrap(width, n.license)); err != nil {
			return err
		}
		fmt.Fprintln(ios.Out)
	}
	return nil
}

func block(ios *iostreams.IOStreams, style iostreams.Style, s string) error {
	return ios.WithStyle(ios.Out, style, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, strings.TrimRight(s, "\n"))
		return err
	})
}
