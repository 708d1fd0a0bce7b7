package drive

import "io"

// ProgressFunc receives transfer progress. total is -1 when the content
// length is unknown.
type ProgressFunc func(transferred, total int64)

// progressReader wraps a reader and reports cumulative byte counts to a
// callback as data flows through.
type progressReader struct {
	r           io.Reader
	total       int64
	transferred int64
	report      ProgressFunc
}

// NewProgressReader wraps r so that report is called after every read with
// the cumulative byte count. Pass total -1 when the size is unknown. A nil
// report returns r unchanged.
func NewProgressReader(r io.Reader, total int64, report ProgressFunc) io.Reader {
	if report == nil {
		return r
	}
	return &progressReader{r: r, total: total, report: report}
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.transferred += int64(n)
		p.report(p.transferred, p.total)
	}
	return n, err
}
