package audio

import "encoding/binary"

// WAVFromPCM prepends a RIFF/WAVE header to raw PCM so the session recording
// can be opened by ordinary players. The payload is not copied or resampled.
func WAVFromPCM(pcm []byte, sampleRateHz, bitsPerSample, channels int) []byte {
	if sampleRateHz <= 0 {
		sampleRateHz = PlaybackRateHz
	}
	if bitsPerSample <= 0 {
		bitsPerSample = 16
	}
	if channels <= 0 {
		channels = 1
	}
	frameBytes := channels * bitsPerSample / 8
	byteRate := sampleRateHz * frameBytes

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+len(pcm)))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // uncompressed
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRateHz))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(frameBytes))
	binary.LittleEndian.PutUint16(header[34:36], uint16(bitsPerSample))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(pcm)))

	return append(header, pcm...)
}
