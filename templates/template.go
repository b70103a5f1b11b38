// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package templates

const (
	/**** option table dump ****/
	DumpTemplate = `{{range $key, $value := .Options}}{{$key}} = {{printf "%q" $value}}{{with index $.Values $key}}{{if gt (len .) 1}}  # {{len .}} values{{end}}{{end}}
{{end}}{{range .Arguments}}argument: {{printf "%q" .}}
{{end}}`

	/**** single typed lookup ****/
	LookupTemplate = `{{.Value}}
`

	/**** declared options ****/
	ReportTemplate = `{{range .}}{{.Name}} ({{.Type}}{{if not .Set}}, default{{end}}) = {{printf "%v" .Value}}
{{end}}`
)
