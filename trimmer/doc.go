// Package trimmer drives trimming over a batch of ROM files.
//
// A Trimmer applies one mode selection (simulate or trim, in-place or
// copy-to-new-path) to an ordered list of file paths. Files are processed
// one at a time and independently: a failure on one file is recorded in its
// Result and the batch continues.
//
// # Usage
//
//	tr := trimmer.New(
//	    trimmer.WithInPlace(true),
//	    trimmer.WithResultCallback(func(r trimmer.Result) {
//	        if r.Err != nil {
//	            fmt.Fprintf(os.Stderr, "'%s': %v\n", r.Source, r.Err)
//	            return
//	        }
//	        fmt.Printf("'%s': size reduced from %d to %d\n", r.Dest, r.OriginalSize, r.TrimmedSize)
//	    }),
//	)
//	results := tr.Run(paths)
package trimmer
