package record

// NarrowToWide is the field table used by [Translate].
//
//nolint:gochecknoglobals
var NarrowToWide = Mapping[Narrow, Wide]{
	{"Dev", Identity, func(in *Narrow, out *Wide) { out.Dev = in.Dev }},
	{"Mode", Identity, func(in *Narrow, out *Wide) { out.Mode = in.Mode }},
	{"Nlink", Identity, func(in *Narrow, out *Wide) { out.Nlink = in.Nlink }},
	{"Ino", Identity, func(in *Narrow, out *Wide) { out.Ino = uint64(in.Ino) }},
	{"Uid", Identity, func(in *Narrow, out *Wide) { out.Uid = in.Uid }},
	{"Gid", Identity, func(in *Narrow, out *Wide) { out.Gid = in.Gid }},
	{"Rdev", Identity, func(in *Narrow, out *Wide) { out.Rdev = in.Rdev }},
	{"Atim", Identity, func(in *Narrow, out *Wide) { out.Atim = in.Atim }},
	{"Mtim", Identity, func(in *Narrow, out *Wide) { out.Mtim = in.Mtim }},
	{"Ctim", Identity, func(in *Narrow, out *Wide) { out.Ctim = in.Ctim }},
	{"Birthtim", Computed, func(in *Narrow, out *Wide) { out.Birthtim = synthesizeBirthtime(in) }},
	{"Size", Identity, func(in *Narrow, out *Wide) { out.Size = in.Size }},
	{"Blocks", Identity, func(in *Narrow, out *Wide) { out.Blocks = in.Blocks }},
	{"Blksize", Identity, func(in *Narrow, out *Wide) { out.Blksize = in.Blksize }},
	{"Flags", Identity, func(in *Narrow, out *Wide) { out.Flags = in.Flags }},
	{"Gen", Identity, func(in *Narrow, out *Wide) { out.Gen = in.Gen }},
	{"Lspare", Reserved, func(_ *Narrow, out *Wide) { out.Lspare = 0 }},
	{"Qspare", Reserved, func(_ *Narrow, out *Wide) { out.Qspare = [2]int64{} }},
}

// Translate fills out from in and returns status unchanged. The translation
// happens regardless of status, so on failure out mirrors whatever in held.
func Translate(in *Narrow, out *Wide, status error) error {
	NarrowToWide.Apply(in, out)

	return status
}

// The narrow record carries no creation time, so the earlier of the change
// and modification times stands in for it.
func synthesizeBirthtime(in *Narrow) Timespec {
	if in.Ctim.Before(in.Mtim) {
		return in.Ctim
	}

	return in.Mtim
}
