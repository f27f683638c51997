package sdkmodel_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/reoring/sdkmodel"
)

type bare struct {
	a *string
	t *time.Time
	l sdkmodel.List[string]
}

type bareBuilder struct{}

func (b *bareBuilder) A(*string) *bareBuilder      { return b }
func (b *bareBuilder) T(*time.Time) *bareBuilder   { return b }
func (b *bareBuilder) L([]string) *bareBuilder     { return b }
func (b *bareBuilder) LT([]time.Time) *bareBuilder { return b }
func getA(s *bare) *string                         { return s.a }
func getT(s *bare) *time.Time                      { return s.t }
func getL(s *bare) sdkmodel.List[string]           { return s.l }
func getLT(s *bare) sdkmodel.List[time.Time]       { return nil }

func issueCodes(t *testing.T, err error) map[string]string {
	t.Helper()
	iss, ok := sdkmodel.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	out := map[string]string{}
	for _, it := range iss {
		out[it.Path] = it.Code
	}
	return out
}

func TestNewSchema_Validation(t *testing.T) {
	_, err := sdkmodel.NewSchema("Bad", sdkmodel.KindStructure,
		sdkmodel.StringField("a", getA, (*bareBuilder).A, sdkmodel.Payload("a")),
		sdkmodel.StringField("a", getA, (*bareBuilder).A, sdkmodel.Payload("a2")),
		sdkmodel.StringField("noLoc", getA, (*bareBuilder).A),
		sdkmodel.StringField("twoLoc", getA, (*bareBuilder).A, sdkmodel.Payload("x"), sdkmodel.Header("X")),
		sdkmodel.StringField("fmt", getA, (*bareBuilder).A, sdkmodel.Payload("f"), sdkmodel.Format(sdkmodel.ISO8601)),
		sdkmodel.StringField("listy", getA, (*bareBuilder).A, sdkmodel.Payload("l"), sdkmodel.ListOfMembers(sdkmodel.MarshallingString)),
		nil,
		sdkmodel.StringField("", getA, (*bareBuilder).A, sdkmodel.Payload("e")),
	)
	got := issueCodes(t, err)
	want := map[string]string{
		"/a":      sdkmodel.CodeDuplicateField,
		"/noLoc":  sdkmodel.CodeMissingLocation,
		"/twoLoc": sdkmodel.CodeInvalidTrait,
		"/fmt":    sdkmodel.CodeInvalidTrait,
		"/listy":  sdkmodel.CodeInvalidTrait,
		"/6":      sdkmodel.CodeInvalidTrait,
		"/7":      sdkmodel.CodeInvalidTrait,
	}
	for p, c := range want {
		if got[p] != c {
			t.Fatalf("path %s: got %q want %q (all: %v)", p, got[p], c, got)
		}
	}
}

func TestNewSchema_TimestampFormatPlacement(t *testing.T) {
	_, err := sdkmodel.NewSchema("Ok", sdkmodel.KindStructure,
		sdkmodel.InstantField("t", getT, (*bareBuilder).T, sdkmodel.Payload("t"), sdkmodel.Format(sdkmodel.RFC822)),
		sdkmodel.ListField("lt", getLT, (*bareBuilder).LT, sdkmodel.Payload("lt"),
			sdkmodel.ListTrait{Member: sdkmodel.MemberInfo{Type: sdkmodel.MarshallingInstant}},
			sdkmodel.Format(sdkmodel.UnixTimestamp)),
	)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}

	_, err = sdkmodel.NewSchema("Bad", sdkmodel.KindStructure,
		sdkmodel.ListField("l", getL, (*bareBuilder).L, sdkmodel.Payload("l"),
			sdkmodel.ListOfMembers(sdkmodel.MarshallingString), sdkmodel.Format(sdkmodel.UnixTimestamp)),
	)
	if issueCodes(t, err)["/l"] != sdkmodel.CodeInvalidTrait {
		t.Fatalf("format on list of strings accepted: %v", err)
	}
}

func TestMustSchema_Panics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil || !strings.HasPrefix(r.(string), "Dup: ") {
			t.Fatalf("expected panic naming the type, got %v", r)
		}
	}()
	sdkmodel.MustSchema("Dup", sdkmodel.KindStructure,
		sdkmodel.StringField("a", getA, (*bareBuilder).A, sdkmodel.Payload("a")),
		sdkmodel.StringField("a", getA, (*bareBuilder).A, sdkmodel.Payload("a")),
	)
}

func TestDescriptorMetadata(t *testing.T) {
	sc := (&gadget{}).Schema()
	if sc.TypeName() != "Gadget" || sc.Kind() != sdkmodel.KindRequest || len(sc.Fields()) != 14 {
		t.Fatalf("schema: %s %v %d", sc.TypeName(), sc.Kind(), len(sc.Fields()))
	}
	if _, ok := sc.FieldByName("Name"); ok {
		t.Fatalf("lookup must be by exact member name")
	}

	d, _ := sc.FieldByName("size")
	if d.MarshallingType() != sdkmodel.MarshallingLong || d.Location().Location != sdkmodel.LocationHeader || d.Location().Name != "X-Size" {
		t.Fatalf("size descriptor: %v %v", d.MarshallingType(), d.Location())
	}
	if d.DisplayName() != "Size" {
		t.Fatalf("display name: %s", d.DisplayName())
	}
	d, _ = sc.FieldByName("byKey")
	if d.DisplayName() != "PartsByKey" || d.Member() == nil || d.Member().Type != sdkmodel.MarshallingStructure {
		t.Fatalf("byKey descriptor: %s %v", d.DisplayName(), d.Member())
	}
	d, _ = sc.FieldByName("at")
	if f, ok := d.TimestampFormat(); !ok || f != sdkmodel.UnixTimestampMillis {
		t.Fatalf("at format: %v %v", f, ok)
	}
	d, _ = sc.FieldByName("secret")
	if !d.Sensitive() {
		t.Fatalf("secret not sensitive")
	}
	d, _ = sc.FieldByName("main")
	if nb := d.NewBuilder(); nb == nil || nb.Schema().TypeName() != "Part" {
		t.Fatalf("main builder: %v", nb)
	}
	if len(d.Traits()) != 1 {
		t.Fatalf("traits: %v", d.Traits())
	}
}

func TestScalarMemberTraits(t *testing.T) {
	sc := (&gadget{}).Schema()
	for name, want := range map[string]sdkmodel.MarshallingType{
		"tags":  sdkmodel.MarshallingString,
		"attrs": sdkmodel.MarshallingString,
	} {
		d, _ := sc.FieldByName(name)
		if d.Member() == nil || d.Member().Type != want || d.Member().NewBuilder != nil {
			t.Fatalf("%s member: %+v", name, d.Member())
		}
	}

	// The trait helpers and the collection constructors live side by side.
	lt := sdkmodel.ListOfMembers(sdkmodel.MarshallingInstant)
	mt := sdkmodel.MapOfValues(sdkmodel.MarshallingLong)
	if lt.Member.Type != sdkmodel.MarshallingInstant || mt.Value.Type != sdkmodel.MarshallingLong {
		t.Fatalf("traits: %+v %+v", lt, mt)
	}
	if l := sdkmodel.ListOf("a", "b"); l.Len() != 2 || l.AutoConstruct() {
		t.Fatalf("ListOf: %v", l)
	}
	if m := sdkmodel.MapOf(map[string]int{"a": 1}); m.Len() != 1 || m.AutoConstruct() {
		t.Fatalf("MapOf: %v", m)
	}
}

func TestDescriptorSet(t *testing.T) {
	b := &gadgetBuilder{}
	sc := b.Schema()
	set := func(name string, v any) {
		t.Helper()
		d, _ := sc.FieldByName(name)
		if err := d.Set(b, v); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	set("name", "n")
	set("count", int32(3))
	set("ratio", ptrTo(1.5))
	set("tags", []any{"a", "b"})
	set("attrs", map[string]any{"k": "v"})
	set("parts", []any{newPart("x"), nil})
	set("main", newPart("m"))
	g := b.Build()
	if *g.name != "n" || *g.count != 3 || *g.ratio != 1.5 || g.tags.Len() != 2 || g.parts.At(1) != nil {
		t.Fatalf("set: %v", g)
	}
	if v, _ := g.attrs.Get("k"); v != "v" {
		t.Fatalf("attrs: %v", g.attrs)
	}

	d, _ := sc.FieldByName("count")
	var tm *sdkmodel.TypeMismatchError
	if err := d.Set(b, "three"); !errors.As(err, &tm) || tm.Field != "count" {
		t.Fatalf("want mismatch, got %v", err)
	}
	if err := d.Set(&partBuilder{}, int32(1)); !errors.As(err, &tm) {
		t.Fatalf("foreign builder accepted: %v", err)
	}
	d, _ = sc.FieldByName("tags")
	if err := d.Set(b, []any{"a", 1}); !errors.As(err, &tm) || tm.Field != "tags/1" {
		t.Fatalf("bad element accepted: %v", err)
	}
	d, _ = sc.FieldByName("name")
	if err := d.Set(b, nil); err != nil || b.Build().name != nil {
		t.Fatalf("nil must clear: %v", err)
	}
}

func TestGetValueForField_Normalized(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g := (&gadgetBuilder{}).
		Count(ptrTo(int32(7))).Size(ptrTo(int64(1) << 40)).On(ptrTo(true)).
		Weight(ptrTo(float32(0.5))).At(&at).Blob([]byte{1, 2}).Main(newPart("m")).
		Build()

	if v, ok, err := sdkmodel.GetValueForField[int32](g, "count"); v != 7 || !ok || err != nil {
		t.Fatalf("count: %v %v %v", v, ok, err)
	}
	if v, _, _ := sdkmodel.GetValueForField[int64](g, "size"); v != 1<<40 {
		t.Fatalf("size: %v", v)
	}
	if v, _, _ := sdkmodel.GetValueForField[bool](g, "on"); !v {
		t.Fatalf("on")
	}
	if v, _, _ := sdkmodel.GetValueForField[float32](g, "weight"); v != 0.5 {
		t.Fatalf("weight: %v", v)
	}
	if v, _, _ := sdkmodel.GetValueForField[time.Time](g, "at"); !v.Equal(at) {
		t.Fatalf("at: %v", v)
	}
	if v, _, _ := sdkmodel.GetValueForField[[]byte](g, "blob"); len(v) != 2 {
		t.Fatalf("blob: %v", v)
	}
	if v, _, _ := sdkmodel.GetValueForField[*part](g, "main"); *v.label != "m" {
		t.Fatalf("main: %v", v)
	}
	if v, _, _ := sdkmodel.GetValueForField[sdkmodel.Object](g, "main"); v == nil {
		t.Fatalf("main as Object")
	}
	if _, ok, err := sdkmodel.GetValueForField[string](g, "name"); ok || err != nil {
		t.Fatalf("absent name: %v %v", ok, err)
	}
	if v, ok, _ := sdkmodel.GetValueForField[sdkmodel.Map[string, *part]](g, "byKey"); !ok || !v.AutoConstruct() {
		t.Fatalf("unset map should be present as the sentinel")
	}
	if _, _, err := sdkmodel.GetValueForField[string](g, "count"); err == nil {
		t.Fatalf("expected mismatch")
	}
	if _, ok, err := sdkmodel.GetValueForField[string](nil, "name"); ok || err != nil {
		t.Fatalf("nil object")
	}
}

func TestEqualAndHash_Consistent(t *testing.T) {
	mk := func() *gadget {
		return (&gadgetBuilder{}).
			Name(ptrTo("g")).Ratio(ptrTo(math.NaN())).Weight(ptrTo(float32(0))).
			Tags([]string{"a"}).Attrs(map[string]string{"x": "1", "y": "2"}).
			ByKey(map[string]*part{"p": newPart("p"), "q": nil}).
			Build()
	}
	a, b := mk(), mk()
	if !a.Equal(b) || a.HashCode() != b.HashCode() {
		t.Fatalf("equal gadgets disagree:\n%s\n%s", a, b)
	}
	negZero := a.ToBuilder().Weight(ptrTo(float32(math.Copysign(0, -1)))).Build()
	if !a.Equal(negZero) || a.HashCode() != negZero.HashCode() {
		t.Fatalf("-0 and 0 must agree")
	}
	if a.Equal(a.ToBuilder().Tags([]string{"a", "b"}).Build()) {
		t.Fatalf("different tags equal")
	}
	if a.Equal(a.ToBuilder().ByKey(map[string]*part{"p": newPart("p")}).Build()) {
		t.Fatalf("missing nil entry ignored")
	}
	if a.Equal(newPart("g")) {
		t.Fatalf("cross-type equality")
	}
}

func TestString_Format(t *testing.T) {
	g := (&gadgetBuilder{}).
		Name(ptrTo("g")).Count(ptrTo(int32(2))).On(ptrTo(false)).Ratio(ptrTo(0.25)).
		At(ptrTo(time.Date(2024, 1, 1, 0, 0, 0, 500_000_000, time.UTC))).
		Blob([]byte{0xca, 0xfe}).Secret(ptrTo("hunter2")).
		Tags([]string{}).Parts([]*part{newPart("x"), nil}).
		ByKey(map[string]*part{"b": nil, "a": newPart("y")}).
		Build()
	want := "Gadget(Name=g, Count=2, On=false, Ratio=0.25, At=2024-01-01T00:00:00.5Z, Blob=0xcafe, " +
		"Secret=" + sdkmodel.Redacted + ", Tags=[], Parts=[Part(Label=x), null], PartsByKey={a=Part(Label=y), b=null})"
	if got := g.String(); got != want {
		t.Fatalf("String:\n got %s\nwant %s", got, want)
	}
	if strings.Contains(g.String(), "hunter2") {
		t.Fatalf("secret leaked")
	}
}

func TestModify_LeavesOriginal(t *testing.T) {
	g := (&gadgetBuilder{}).Name(ptrTo("a")).Build()
	h := sdkmodel.Modify[*gadget](g, func(b *gadgetBuilder) { b.Name(ptrTo("b")) })
	if *g.name != "a" || *h.name != "b" {
		t.Fatalf("modify: %s %s", g, h)
	}
	if same := sdkmodel.Modify[*gadget](g, nil); !same.Equal(g) || same == g {
		t.Fatalf("nil mutate should copy")
	}
}
