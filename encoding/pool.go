package encoding

import "sync"

// A Pool reuses Encodings across scenes, keeping their record slices
// allocated. The zero value is ready to use.
type Pool struct {
	pool sync.Pool
}

func (p *Pool) Get() *Encoding {
	enc, ok := p.pool.Get().(*Encoding)
	if !ok {
		enc = &Encoding{}
	}
	enc.Reset()
	return enc
}

func (p *Pool) Put(enc *Encoding) {
	p.pool.Put(enc)
}
