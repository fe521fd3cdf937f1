// Package mkvtoolnix builds, runs and interprets mkvtoolnix command lines.
//
// The package wraps the three mkvtoolnix executables: mkvmerge, mkvpropedit
// and mkvextract. Commands are assembled with typed builders that serialize
// to the exact argument vector the tools expect, then run through a Toolnix
// client which classifies the combined output into info, warning, error and
// progress lines.
//
// # Identifying a file
//
//	tk := mkvtoolnix.New()
//
//	info, err := tk.Identify(ctx, "movie.mkv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, track := range info.Tracks {
//	    fmt.Println(track.ID, track.Type, track.Codec, track.LanguageCode())
//	}
//
// # Editing properties
//
//	eng, err := tk.LookupLanguage(ctx, "en")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cmd := mkvtoolnix.NewPropEditCommand("movie.mkv").
//	    EditTrackByNumber(2, func(e *mkvtoolnix.PropertyEdit) {
//	        e.SetLanguage(eng).SetIsDefault(true)
//	    })
//
//	if _, err := tk.Execute(ctx, cmd); err != nil {
//	    if perr, ok := errors.AsType[*mkvtoolnix.PropEditError](err); ok {
//	        for _, l := range perr.Result.Errors() {
//	            fmt.Println(l.Text)
//	        }
//	    }
//	}
//
// # Merging
//
//	cmd := mkvtoolnix.NewMergeCommand("out.mkv").
//	    AddInputFile("movie.mkv", func(in *mkvtoolnix.InputFile) {
//	        in.Audio.ExcludeAll()
//	    })
//
//	res, err := tk.Start(ctx, cmd)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer res.Close()
//
//	for pct := range mkvtoolnix.Progress(res.Lines()) {
//	    fmt.Printf("\r%d%%", pct)
//	}
//
// A run succeeds when the process exits with code 0 and prints no ERROR
// line. Execute reports a failed run as MergeError, PropEditError or
// ExtractError, each carrying the complete Result.
package mkvtoolnix
