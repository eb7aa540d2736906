//go:build linux

package capture

import (
	"fmt"
	"image"

	"github.com/blackjack/webcam"

	"github.com/d-becker/raspberry/domain/motion"
)

// V4L2 fourcc for YUYV 4:2:2.
const fmtYUYV = webcam.PixelFormat(0x56595559)

const frameWaitSeconds = 5

// Webcam streams frames from a V4L2 device in YUYV format.
type Webcam struct {
	cam  *webcam.Webcam
	w, h uint32
}

// OpenWebcam opens the device, negotiates YUYV at the driver's preferred size
// and starts streaming.
func OpenWebcam(device string) (*Webcam, error) {
	cam, err := webcam.Open(device)
	if err != nil {
		return nil, err
	}
	f, w, h, err := cam.SetImageFormat(fmtYUYV, 0, 0)
	if err != nil {
		cam.Close()
		return nil, fmt.Errorf("set image format: %w", err)
	}
	if f != fmtYUYV {
		cam.Close()
		return nil, fmt.Errorf("device %s does not support YUYV", device)
	}
	if err := cam.StartStreaming(); err != nil {
		cam.Close()
		return nil, fmt.Errorf("start streaming: %w", err)
	}
	return &Webcam{cam: cam, w: w, h: h}, nil
}

// Capture waits for the next frame and converts it to a YCbCr image.
func (c *Webcam) Capture() (image.Image, error) {
	if err := c.cam.WaitForFrame(frameWaitSeconds); err != nil {
		return nil, err
	}
	frame, err := c.cam.ReadFrame()
	if err != nil {
		return nil, err
	}
	if want := int(c.w*c.h) * 2; len(frame) < want {
		return nil, fmt.Errorf("short frame: %d bytes, want %d", len(frame), want)
	}
	return yuyvToImage(frame, c.w, c.h), nil
}

// Close stops streaming and releases the device.
func (c *Webcam) Close() error {
	return c.cam.Close()
}

// yuyvToImage unpacks a packed YUYV buffer into a planar 4:2:2 YCbCr image.
func yuyvToImage(frame []byte, w, h uint32) *image.YCbCr {
	img := image.NewYCbCr(image.Rect(0, 0, int(w), int(h)), image.YCbCrSubsampleRatio422)
	for i := range img.Cb {
		ii := i * 4
		img.Y[i*2] = frame[ii]
		img.Y[i*2+1] = frame[ii+2]
		img.Cb[i] = frame[ii+1]
		img.Cr[i] = frame[ii+3]
	}
	return img
}

var _ motion.FrameSource = (*Webcam)(nil)
