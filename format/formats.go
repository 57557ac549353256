package format

// Binary16, Binary32, and Binary64 are the three standard IEEE-754
// binary encodings this module supports (spec §3).
var (
	Binary16 = Descriptor{E: 5, S: 11, Name: "f16"}
	Binary32 = Descriptor{E: 8, S: 24, Name: "f32"}
	Binary64 = Descriptor{E: 11, S: 53, Name: "f64"}
)

// All lists the three standard formats, narrowest first — the order
// the CLI report (spec §6) lists them in.
var All = []Descriptor{Binary16, Binary32, Binary64}
