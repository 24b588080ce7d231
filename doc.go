/*
Package ktx implements reading and writing of Khronos KTX 1.1 texture
containers.

A KTX file stores a fixed 64-byte header, a block of ordered key-value
metadata and one image block per mip level. Each level holds every array
element, cubemap face, depth slice and row of the texture, padded to 4-byte
boundaries exactly as the format requires. The package validates the header,
parses the metadata and walks the levels, returning descriptors that view the
original bytes instead of copying them.

Reading:

	k, err := ktx.ReadFile("albedo.ktx")
	if err != nil {
		// errors.Is(err, ktx.ErrMalformedHeader), ktx.ErrTruncatedData, ...
	}
	face, err := k.Image(0, 0, uint32(ktx.FacePositiveX))

Mip.ImageSize is the raw imageSize field, which for a non-array cubemap
counts one face only; Mip.Len is the byte length of the whole level.
Header size methods report 0 for unknown formats, and Validate rejects
headers whose sizes overflow 64 bits.

Writing:

	h := ktx.Header{
		GLType:           ktx.GLTypeUnsignedByte,
		GLTypeSize:       1,
		GLFormat:         ktx.GLFormatRGBA,
		GLInternalFormat: ktx.InternalFormatRGBA8,
		PixelWidth:       4,
		PixelHeight:      4,
	}
	data, err := ktx.Serialize(h, nil, [][]byte{pixels})

The codec does not convert, compress or upload pixel data; see the ktximage
and gpulayout packages for adapters built on top of it. Files compressed as
a whole with an LZ4 frame are accepted by ReadFile and produced by WriteFile
with WriteOptions.Compress.
*/
package ktx
