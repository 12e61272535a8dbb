package rlzjb

// Result is the ownership handoff record for one decode across a raw-buffer boundary.
// Exactly one of Take or Release ends ownership of a successful result.
// A Result is not safe for concurrent use.
type Result struct {
	Success  bool // Decode succeeded and the result owns a buffer.
	Size     int  // Length of the decoded bytes.
	Capacity int  // Capacity of the owned buffer, needed by the releasing side.

	data     []byte
	err      error
	released bool
}

// DecompressResult decodes src into an owned Result.
// A nil src is the null-pointer case: the result fails without decoding.
// An empty non-nil src is decoded normally.
func DecompressResult(src []byte, outLen int, opts *Options) *Result {
	if src == nil {
		return &Result{err: ErrNilInput}
	}

	out, err := Decompress(src, outLen, opts)
	if err != nil {
		return &Result{err: err}
	}

	return &Result{
		Success:  true,
		Size:     len(out),
		Capacity: cap(out),
		data:     out,
	}
}

// Err returns why the decode failed, or nil on success.
func (r *Result) Err() error {
	return r.err
}

// Take moves the decoded bytes to the caller. The result no longer owns them.
func (r *Result) Take() ([]byte, error) {
	if err := r.checkOwned(); err != nil {
		return nil, err
	}

	out := r.data
	r.drop()

	return out, nil
}

// Release drops the decoded bytes without handing them out.
func (r *Result) Release() error {
	if err := r.checkOwned(); err != nil {
		return err
	}

	r.drop()

	return nil
}

func (r *Result) checkOwned() error {
	if !r.Success {
		return ErrNotOwned
	}

	if r.released {
		return ErrReleased
	}

	return nil
}

func (r *Result) drop() {
	r.data = nil
	r.released = true
	r.Size = 0
	r.Capacity = 0
}
