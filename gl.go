package ktx

// GLType is the OpenGL pixel data type (GL 4.4 table 8.2).
type GLType uint32

// GLType values. GLTypeCompressed marks block-compressed data.
const (
	GLTypeCompressed GLType = 0

	GLTypeByte          GLType = 0x1400
	GLTypeUnsignedByte  GLType = 0x1401
	GLTypeShort         GLType = 0x1402
	GLTypeUnsignedShort GLType = 0x1403
	GLTypeInt           GLType = 0x1404
	GLTypeUnsignedInt   GLType = 0x1405
	GLTypeFloat         GLType = 0x1406
	GLTypeHalfFloat     GLType = 0x140B

	GLTypeUnsignedByte332          GLType = 0x8032
	GLTypeUnsignedByte233Rev       GLType = 0x8362
	GLTypeUnsignedShort565         GLType = 0x8363
	GLTypeUnsignedShort565Rev      GLType = 0x8364
	GLTypeUnsignedShort4444        GLType = 0x8033
	GLTypeUnsignedShort4444Rev     GLType = 0x8365
	GLTypeUnsignedShort5551        GLType = 0x8034
	GLTypeUnsignedShort1555Rev     GLType = 0x8366
	GLTypeUnsignedInt8888          GLType = 0x8035
	GLTypeUnsignedInt8888Rev       GLType = 0x8367
	GLTypeUnsignedInt1010102       GLType = 0x8036
	GLTypeUnsignedInt2101010Rev    GLType = 0x8368
	GLTypeUnsignedInt248           GLType = 0x84FA
	GLTypeUnsignedInt10F11F11FRev  GLType = 0x8C3B
	GLTypeUnsignedInt5999Rev       GLType = 0x8C3E
	GLTypeFloat32UnsignedInt248Rev GLType = 0x8DAD
)

// GLFormat is the OpenGL pixel format (GL 4.4 table 8.3).
type GLFormat uint32

// GLFormat values. GLFormatCompressed marks block-compressed data.
const (
	GLFormatCompressed GLFormat = 0

	GLFormatStencilIndex   GLFormat = 0x1901
	GLFormatDepthComponent GLFormat = 0x1902
	GLFormatDepthStencil   GLFormat = 0x84F9

	GLFormatRed            GLFormat = 0x1903
	GLFormatGreen          GLFormat = 0x1904
	GLFormatBlue           GLFormat = 0x1905
	GLFormatAlpha          GLFormat = 0x1906
	GLFormatRGB            GLFormat = 0x1907
	GLFormatRGBA           GLFormat = 0x1908
	GLFormatLuminance      GLFormat = 0x1909
	GLFormatLuminanceAlpha GLFormat = 0x190A
	GLFormatRG             GLFormat = 0x8227
	GLFormatBGR            GLFormat = 0x80E0
	GLFormatBGRA           GLFormat = 0x80E1

	GLFormatRGInteger    GLFormat = 0x8228
	GLFormatRedInteger   GLFormat = 0x8D94
	GLFormatGreenInteger GLFormat = 0x8D95
	GLFormatBlueInteger  GLFormat = 0x8D96
	GLFormatRGBInteger   GLFormat = 0x8D98
	GLFormatRGBAInteger  GLFormat = 0x8D99
	GLFormatBGRInteger   GLFormat = 0x8D9A
	GLFormatBGRAInteger  GLFormat = 0x8D9B
)

// GLInternalFormat is the sized OpenGL internal format, compressed or not
// (GL 4.4 tables 8.12-8.14 plus the S3TC and ASTC extensions).
type GLInternalFormat uint32

// Uncompressed internal formats.
const (
	InternalFormatR8        GLInternalFormat = 0x8229
	InternalFormatR8SNorm   GLInternalFormat = 0x8F94
	InternalFormatR16       GLInternalFormat = 0x822A
	InternalFormatR16SNorm  GLInternalFormat = 0x8F98
	InternalFormatRG8       GLInternalFormat = 0x822B
	InternalFormatRG8SNorm  GLInternalFormat = 0x8F95
	InternalFormatRG16      GLInternalFormat = 0x822C
	InternalFormatRG16SNorm GLInternalFormat = 0x8F99

	InternalFormatR3G3B2     GLInternalFormat = 0x2A10
	InternalFormatRGB4       GLInternalFormat = 0x804F
	InternalFormatRGB5       GLInternalFormat = 0x8050
	InternalFormatRGB565     GLInternalFormat = 0x8D62
	InternalFormatRGB8       GLInternalFormat = 0x8051
	InternalFormatRGB8SNorm  GLInternalFormat = 0x8F96
	InternalFormatRGB10      GLInternalFormat = 0x8052
	InternalFormatRGB12      GLInternalFormat = 0x8053
	InternalFormatRGB16      GLInternalFormat = 0x8054
	InternalFormatRGB16SNorm GLInternalFormat = 0x8F9A

	InternalFormatRGBA2       GLInternalFormat = 0x8055
	InternalFormatRGBA4       GLInternalFormat = 0x8056
	InternalFormatRGB5A1      GLInternalFormat = 0x8057
	InternalFormatRGBA8       GLInternalFormat = 0x8058
	InternalFormatRGBA8SNorm  GLInternalFormat = 0x8F97
	InternalFormatRGB10A2     GLInternalFormat = 0x8059
	InternalFormatRGB10A2UI   GLInternalFormat = 0x906F
	InternalFormatRGBA12      GLInternalFormat = 0x805A
	InternalFormatRGBA16      GLInternalFormat = 0x805B
	InternalFormatRGBA16SNorm GLInternalFormat = 0x8F9B

	InternalFormatSRGB8       GLInternalFormat = 0x8C41
	InternalFormatSRGB8Alpha8 GLInternalFormat = 0x8C43

	InternalFormatR16F    GLInternalFormat = 0x822D
	InternalFormatRG16F   GLInternalFormat = 0x822F
	InternalFormatRGB16F  GLInternalFormat = 0x881B
	InternalFormatRGBA16F GLInternalFormat = 0x881A
	InternalFormatR32F    GLInternalFormat = 0x822E
	InternalFormatRG32F   GLInternalFormat = 0x8230
	InternalFormatRGB32F  GLInternalFormat = 0x8815
	InternalFormatRGBA32F GLInternalFormat = 0x8814

	InternalFormatR11FG11FB10F GLInternalFormat = 0x8C3A
	InternalFormatRGB9E5       GLInternalFormat = 0x8C3D

	InternalFormatR8I      GLInternalFormat = 0x8231
	InternalFormatR8UI     GLInternalFormat = 0x8232
	InternalFormatR16I     GLInternalFormat = 0x8233
	InternalFormatR16UI    GLInternalFormat = 0x8234
	InternalFormatR32I     GLInternalFormat = 0x8235
	InternalFormatR32UI    GLInternalFormat = 0x8236
	InternalFormatRG8I     GLInternalFormat = 0x8237
	InternalFormatRG8UI    GLInternalFormat = 0x8238
	InternalFormatRG16I    GLInternalFormat = 0x8239
	InternalFormatRG16UI   GLInternalFormat = 0x823A
	InternalFormatRG32I    GLInternalFormat = 0x823B
	InternalFormatRG32UI   GLInternalFormat = 0x823C
	InternalFormatRGB8I    GLInternalFormat = 0x8D8F
	InternalFormatRGB8UI   GLInternalFormat = 0x8D7D
	InternalFormatRGB16I   GLInternalFormat = 0x8D89
	InternalFormatRGB16UI  GLInternalFormat = 0x8D77
	InternalFormatRGB32I   GLInternalFormat = 0x8D83
	InternalFormatRGB32UI  GLInternalFormat = 0x8D71
	InternalFormatRGBA8I   GLInternalFormat = 0x8D8E
	InternalFormatRGBA8UI  GLInternalFormat = 0x8D7C
	InternalFormatRGBA16I  GLInternalFormat = 0x8D88
	InternalFormatRGBA16UI GLInternalFormat = 0x8D76
	InternalFormatRGBA32I  GLInternalFormat = 0x8D82
	InternalFormatRGBA32UI GLInternalFormat = 0x8D70

	InternalFormatDepthComponent16  GLInternalFormat = 0x81A5
	InternalFormatDepthComponent24  GLInternalFormat = 0x81A6
	InternalFormatDepthComponent32  GLInternalFormat = 0x81A7
	InternalFormatDepthComponent32F GLInternalFormat = 0x8CAC
	InternalFormatDepth24Stencil8   GLInternalFormat = 0x88F0
	InternalFormatDepth32FStencil8  GLInternalFormat = 0x8CAD

	InternalFormatStencilIndex1  GLInternalFormat = 0x8D46
	InternalFormatStencilIndex4  GLInternalFormat = 0x8D47
	InternalFormatStencilIndex8  GLInternalFormat = 0x8D48
	InternalFormatStencilIndex16 GLInternalFormat = 0x8D49
)

// Compressed internal formats.
const (
	// Generic formats; the block layout is chosen by the driver.
	InternalFormatCompressedRed       GLInternalFormat = 0x8225
	InternalFormatCompressedRG        GLInternalFormat = 0x8226
	InternalFormatCompressedRGB       GLInternalFormat = 0x84ED
	InternalFormatCompressedRGBA      GLInternalFormat = 0x84EE
	InternalFormatCompressedSRGB      GLInternalFormat = 0x8C48
	InternalFormatCompressedSRGBAlpha GLInternalFormat = 0x8C49

	InternalFormatCompressedRGBS3TCDXT1  GLInternalFormat = 0x83F0
	InternalFormatCompressedRGBAS3TCDXT1 GLInternalFormat = 0x83F1
	InternalFormatCompressedRGBAS3TCDXT3 GLInternalFormat = 0x83F2
	InternalFormatCompressedRGBAS3TCDXT5 GLInternalFormat = 0x83F3

	InternalFormatCompressedRedRGTC1       GLInternalFormat = 0x8DBB
	InternalFormatCompressedSignedRedRGTC1 GLInternalFormat = 0x8DBC
	InternalFormatCompressedRGRGTC2        GLInternalFormat = 0x8DBD
	InternalFormatCompressedSignedRGRGTC2  GLInternalFormat = 0x8DBE

	InternalFormatCompressedRGBABPTCUnorm        GLInternalFormat = 0x8E8C
	InternalFormatCompressedSRGBAlphaBPTCUnorm   GLInternalFormat = 0x8E8D
	InternalFormatCompressedRGBBPTCSignedFloat   GLInternalFormat = 0x8E8E
	InternalFormatCompressedRGBBPTCUnsignedFloat GLInternalFormat = 0x8E8F

	InternalFormatCompressedRGB8ETC2                    GLInternalFormat = 0x9274
	InternalFormatCompressedSRGB8ETC2                   GLInternalFormat = 0x9275
	InternalFormatCompressedRGB8PunchthroughAlpha1ETC2  GLInternalFormat = 0x9276
	InternalFormatCompressedSRGB8PunchthroughAlpha1ETC2 GLInternalFormat = 0x9277
	InternalFormatCompressedRGBA8ETC2EAC                GLInternalFormat = 0x9278
	InternalFormatCompressedSRGB8Alpha8ETC2EAC          GLInternalFormat = 0x9279

	InternalFormatCompressedR11EAC        GLInternalFormat = 0x9270
	InternalFormatCompressedSignedR11EAC  GLInternalFormat = 0x9271
	InternalFormatCompressedRG11EAC       GLInternalFormat = 0x9272
	InternalFormatCompressedSignedRG11EAC GLInternalFormat = 0x9273

	InternalFormatCompressedRGBAASTC4x4   GLInternalFormat = 0x93B0
	InternalFormatCompressedRGBAASTC5x4   GLInternalFormat = 0x93B1
	InternalFormatCompressedRGBAASTC5x5   GLInternalFormat = 0x93B2
	InternalFormatCompressedRGBAASTC6x5   GLInternalFormat = 0x93B3
	InternalFormatCompressedRGBAASTC6x6   GLInternalFormat = 0x93B4
	InternalFormatCompressedRGBAASTC8x5   GLInternalFormat = 0x93B5
	InternalFormatCompressedRGBAASTC8x6   GLInternalFormat = 0x93B6
	InternalFormatCompressedRGBAASTC8x8   GLInternalFormat = 0x93B7
	InternalFormatCompressedRGBAASTC10x5  GLInternalFormat = 0x93B8
	InternalFormatCompressedRGBAASTC10x6  GLInternalFormat = 0x93B9
	InternalFormatCompressedRGBAASTC10x8  GLInternalFormat = 0x93BA
	InternalFormatCompressedRGBAASTC10x10 GLInternalFormat = 0x93BB
	InternalFormatCompressedRGBAASTC12x10 GLInternalFormat = 0x93BC
	InternalFormatCompressedRGBAASTC12x12 GLInternalFormat = 0x93BD
)

// GLBaseInternalFormat is the unsized base format (GL 4.4 table 8.11).
type GLBaseInternalFormat uint32

// GLBaseInternalFormat values.
const (
	BaseInternalFormatStencilIndex   GLBaseInternalFormat = 0x1901
	BaseInternalFormatDepthComponent GLBaseInternalFormat = 0x1902
	BaseInternalFormatRed            GLBaseInternalFormat = 0x1903
	BaseInternalFormatRGB            GLBaseInternalFormat = 0x1907
	BaseInternalFormatRGBA           GLBaseInternalFormat = 0x1908
	BaseInternalFormatRG             GLBaseInternalFormat = 0x8227
	BaseInternalFormatDepthStencil   GLBaseInternalFormat = 0x84F9
)

// CubeMapFace indexes the six faces of a cubemap in storage order.
type CubeMapFace uint32

// Cubemap faces.
const (
	FacePositiveX CubeMapFace = iota
	FaceNegativeX
	FacePositiveY
	FaceNegativeY
	FacePositiveZ
	FaceNegativeZ

	NumCubeMapFaces = 6
)
