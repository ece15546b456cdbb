package capability

// Templates render one unit each. They are executed with a View.

const tupleTmpl = `{{.Doc "Tuple%d is a tuple of %d elements." .N .N -}}
type {{.SelfDecl}} struct {
{{- range $i, $s := .S}}
	{{$s}} {{index $.P $i}}
{{- end}}
}

{{.Doc "New%d builds a Tuple%d." .N .N -}}
func New{{.N}}{{.P.Decl "any"}}({{.Params}}) {{.Self}} {
	return {{.Self}}{ {{- .Keyed .V}}}
}
`

const lenTmpl = `{{.Doc "Len returns %d." .N -}}
func ({{.Self}}) Len() int { return {{.N}} }
`

const valuesTmpl = `{{.Doc "Values returns the elements of t in order." -}}
func (t {{.Self}}) Values() []any {
	return []any{ {{- (.Refs "t").Join}}}
}
`

const debugTmpl = `{{.Doc "String formats t as a parenthesized list." -}}
func (t {{.Self}}) String() string {
{{- if .N}}
	return fmt.Sprintf({{printf "%q" .DebugFormat}}, {{(.Refs "t").Join}})
{{- else}}
	return "()"
{{- end}}
}
`

const eqTmpl = `{{.Doc "Equal%d reports whether a and b hold equal elements." .N -}}
func Equal{{.N}}{{.P.Decl "comparable"}}(a, b {{.Self}}) bool {
	return {{.EqualExpr}}
}
`

const ordTmpl = `{{.Doc "Compare%d compares a and b element by element, left to right." .N -}}
func Compare{{.N}}{{.P.Decl "cmp.Ordered"}}(a, b {{.Self}}) int {
{{- range .S}}
	if c := cmp.Compare(a.{{.}}, b.{{.}}); c != 0 {
		return c
	}
{{- end}}

	return 0
}

{{.Doc "Less%d reports whether a sorts before b." .N -}}
func Less{{.N}}{{.P.Decl "cmp.Ordered"}}(a, b {{.Self}}) bool {
	return Compare{{.N}}(a, b) < 0
}
`

const hashTmpl = `{{.Doc "Hash%d feeds the elements of t into h in order." .N -}}
func Hash{{.N}}{{.P.Decl "any"}}(h hash.Hash64, t {{.Self}}) {
{{- range .S}}
	hashing.Write(h, t.{{.}})
{{- end}}
}

{{.Doc "Sum%d hashes t with the default digest." .N -}}
func Sum{{.N}}{{.P.Decl "any"}}(t {{.Self}}) uint64 {
	h := hashing.New()
	Hash{{.N}}(h, t)

	return h.Sum64()
}
`

const cloneTmpl = `{{.Doc "Clone%d clones every element of t." .N -}}
func Clone{{.N}}{{.P.DeclEach "nested.Cloner[%s]"}}(t {{.Self}}) {{.Self}} {
	return {{.Self}}{ {{- .Keyed ((.Refs "t").Wrap "%s.Clone()")}}}
}
`

const indexTmpl = `{{.Doc "Get%d returns element %d." .K .K -}}
func (t {{.Self}}) Get{{.K}}() {{.PK}} { return t.{{.SK}} }

{{.Doc "Ptr%d returns a pointer to element %d." .K .K -}}
func (t *{{.Self}}) Ptr{{.K}}() *{{.PK}} { return &t.{{.SK}} }
`

const pushFrontTmpl = `{{$out := .P.Prepend "U"}}{{$vals := (.Refs "t").Prepend "v"}}
{{- .Doc "PushFront%d prepends v to t." .N -}}
func PushFront{{.N}}{{$out.Decl "any"}}(v U, t {{.Self}}) {{.Tuple $out}} {
	return {{.Tuple $out}}{ {{- .Keyed $vals}}}
}
`

const pushBackTmpl = `{{$out := .P.Append "U"}}{{$vals := (.Refs "t").Append "v"}}
{{- .Doc "PushBack%d appends v to t." .N -}}
func PushBack{{.N}}{{$out.Decl "any"}}(t {{.Self}}, v U) {{.Tuple $out}} {
	return {{.Tuple $out}}{ {{- .Keyed $vals}}}
}
`

const popFrontTmpl = `{{$rest := .P.Skip 1}}{{$vals := (.Refs "t").Skip 1}}
{{- .Doc "PopFront splits off the first element." -}}
func (t {{.Self}}) PopFront() (T1, {{.Tuple $rest}}) {
	return t.V0, {{.Tuple $rest}}{ {{- .Keyed $vals}}}
}
`

const popBackTmpl = `{{$rest := .P.Take .Prev}}{{$vals := (.Refs "t").Take .Prev}}
{{- .Doc "PopBack splits off the last element." -}}
func (t {{.Self}}) PopBack() ({{.Tuple $rest}}, T{{.N}}) {
	return {{.Tuple $rest}}{ {{- .Keyed $vals}}}, t.V{{.Prev}}
}
`

const removeTmpl = `{{$rest := .P.Remove .K}}{{$vals := (.Refs "t").Remove .K}}
{{- .Doc "Remove%d splits off element %d." .K .K -}}
func (t {{.Self}}) Remove{{.K}}() ({{.PK}}, {{.Tuple $rest}}) {
	return t.{{.SK}}, {{.Tuple $rest}}{ {{- .Keyed $vals}}}
}
`

const insertTmpl = `{{$out := .P.Insert .K "U"}}{{$vals := (.Refs "t").Insert .K "v"}}
{{- .Doc "Insert%dAt%d inserts v before element %d of t." .N .K .K -}}
func Insert{{.N}}At{{.K}}{{$out.Decl "any"}}(t {{.Self}}, v U) {{.Tuple $out}} {
	return {{.Tuple $out}}{ {{- .Keyed $vals}}}
}
`

const splitTmpl = `{{$left := .P.Take .K}}{{$right := .P.Skip .K}}{{$refs := .Refs "t"}}
{{- .Doc "Split%d splits t before element %d." .K .K -}}
func (t {{.Self}}) Split{{.K}}() ({{.Tuple $left}}, {{.Tuple $right}}) {
	return {{.Tuple $left}}{ {{- .Keyed ($refs.Take .K)}}}, {{.Tuple $right}}{ {{- .Keyed ($refs.Skip .K)}}}
}
`

const reverseTmpl = `{{$out := .P.Reverse}}
{{- .Doc "Reverse returns the elements of t in reverse order." -}}
func (t {{.Self}}) Reverse() {{.Tuple $out}} {
	return {{.Tuple $out}}{ {{- .Keyed (.Refs "t").Reverse}}}
}
`

const replicateTmpl = `{{$out := .Repeat "T"}}
{{- .Doc "Replicate%d fills a Tuple%d with v." .N .N -}}
{{if eq .N 0 -}}
func Replicate0[T any](_ T) Tuple0 { return Tuple0{} }
{{- else if eq .N 1 -}}
func Replicate1[T any](v T) Tuple1[T] { return Tuple1[T]{V0: v} }
{{- else -}}
func Replicate{{.N}}[T nested.Cloner[T]](v T) {{.Tuple $out}} {
	return {{.Tuple $out}}{ {{- .Keyed .ReplicaVals}}}
}
{{- end}}
`

const nestTmpl = `{{.Doc "Nested%d is the nested form of Tuple%d." .N .N -}}
type Nested{{.N}}{{.P.Decl "any"}} = {{.NestedType}}

{{.Doc "Nest converts t to its nested form." -}}
func (t {{.Self}}) Nest() Nested{{.N}}{{.P.Args}} {
{{- if eq .N 0}}
	return nested.Unit{}
{{- else if eq .N 1}}
	return nested.Single[T1]{Head: t.V0}
{{- else}}
	return nested.PushFront(t.V0, {{.Tuple (.P.Skip 1)}}{ {{- .Keyed ((.Refs "t").Skip 1)}}}.Nest())
{{- end}}
}

{{.Doc "Flatten%d converts n back to Tuple%d." .N .N -}}
func Flatten{{.N}}{{.P.Decl "any"}}(n Nested{{.N}}{{.P.Args}}) {{.Self}} {
{{- if eq .N 0}}
	return Tuple0{}
{{- else if eq .N 1}}
	return Tuple1[T1]{V0: n.Head}
{{- else}}
	return PushFront{{.Prev}}(n.Head, Flatten{{.Prev}}(n.Tail))
{{- end}}
}
`

const optionTmpl = `{{$opts := .P.Wrap "option.Option[%s]"}}
{{- .Doc "Transpose%d returns Some of the unwrapped elements when every element is present." .N -}}
func Transpose{{.N}}{{.P.Decl "any"}}(t {{.Tuple $opts}}) option.Option[{{.Self}}] {
{{- range $i, $s := .S}}
	{{index $.V $i}}, ok := t.{{$s}}.Get()
	if !ok {
		return option.None[{{$.Self}}]()
	}
{{- end}}

	return option.Some({{.Self}}{ {{- .Keyed .V}}})
}

{{.Doc "IntoOptions%d wraps every element of t in Some." .N -}}
func IntoOptions{{.N}}{{.P.Decl "any"}}(t {{.Self}}) {{.Tuple $opts}} {
	return {{.Tuple $opts}}{ {{- .Keyed ((.Refs "t").Wrap "option.Some(%s)")}}}
}
`

const mapTmpl = `{{$params := .P.Concat .U}}
{{- .Doc "Map%d converts every element of t with the matching function." .N -}}
func Map{{.N}}{{$params.Decl "any"}}(t {{.Self}}{{if .N}}, {{.MapFuncs "%s"}}{{end}}) {{.Tuple .U}} {
	return {{.Tuple .U}}{
{{- range $i, $s := .S}}{{if $i}}, {{end}}V{{$i}}: f{{$i}}(t.{{$s}}){{end -}}
	}
}

{{.Doc "TryMap%d is Map%d with fallible conversions. It stops at the first failure." .N .N -}}
func TryMap{{.N}}{{$params.Decl "any"}}(t {{.Self}}{{if .N}}, {{.MapFuncs "(%s, error)"}}{{end}}) ({{.Tuple .U}}, error) {
{{- if .N}}
	var (
		out {{.Tuple .U}}
		err error
	)
{{- range $i, $s := .S}}

	if out.{{$s}}, err = f{{$i}}(t.{{$s}}); err != nil {
		return {{$.Tuple $.U}}{}, &nested.ElementError{Index: {{$i}}, Err: err}
	}
{{- end}}

	return out, nil
{{- else}}
	return Tuple0{}, nil
{{- end}}
}
`

const rowTmpl = `{{$es := .Names "E"}}{{$rs := .Names "R"}}
{{- .Doc "Row%dAt%d collects element %d of every row of m." .N .K .K -}}
func Row{{.N}}At{{.K}}{{.RowDecl}}(m {{.Tuple $rs}}) {{.Tuple $es}} {
	return {{.Tuple $es}}{
{{- range $i, $s := .S}}{{if $i}}, {{end}}V{{$i}}: m.{{$s}}.Get{{$.K}}(){{end -}}
	}
}
`

const rowPtrTmpl = `{{$es := .Names "E"}}{{$rs := .Names "R"}}
{{- .Doc "RowPtr%dAt%d returns pointers to element %d of every row of *m." .N .K .K -}}
func RowPtr{{.N}}At{{.K}}{{.RowPtrDecl}}(m *{{.Tuple $rs}}) {{.Tuple ($es.Wrap "*%s")}} {
	return {{.Tuple ($es.Wrap "*%s")}}{ {{- .Keyed .RowPtrs}}}
}
`

const refsTmpl = `{{$ptrs := .P.Wrap "*%s"}}
{{- .Doc "Ptrs%d returns pointers to every element of *t." .N -}}
func Ptrs{{.N}}{{.P.Decl "any"}}(t *{{.Self}}) {{.Tuple $ptrs}} {
	return {{.Tuple $ptrs}}{ {{- .Keyed ((.Refs "t").Wrap "&%s")}}}
}
