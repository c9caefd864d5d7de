package vector

// Any is a column: a vector of values of one Kind.  Vectors are immutable
// once built; filtering produces a new vector.
type Any interface {
	Kind() Kind
	Len() uint32
}

// Puller is implemented by every stage of a pipeline.  Pull returns the
// next block or nil at end of stream.  Calling Pull with done set tells the
// puller that the caller is finished with the stream.
type Puller interface {
	Pull(done bool) (*Block, error)
}
