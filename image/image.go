package image

import (
	"context"
	"io"
	"strconv"

	"github.com/jy130131/go-openai"
)

// Output sizes accepted by the endpoint.
const (
	Size256  = "256x256"
	Size512  = "512x512"
	Size1024 = "1024x1024"
)

// Response formats: a short-lived URL or the raw bytes inline.
const (
	FormatURL     = "url"
	FormatB64JSON = "b64_json"
)

// GenerateParam is the payload for Generate. Prompt is required.
type GenerateParam struct {
	Prompt         string `json:"prompt"`
	N              int    `json:"n,omitempty"`
	Size           string `json:"size,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
	User           string `json:"user,omitempty"`
}

// NewGenerateParam returns a GenerateParam for the given prompt.
func NewGenerateParam(prompt string) *GenerateParam {
	return &GenerateParam{Prompt: prompt}
}

func (p *GenerateParam) WithN(n int) *GenerateParam { p.N = n; return p }

func (p *GenerateParam) WithSize(size string) *GenerateParam { p.Size = size; return p }

func (p *GenerateParam) WithResponseFormat(format string) *GenerateParam {
	p.ResponseFormat = format
	return p
}

func (p *GenerateParam) WithUser(user string) *GenerateParam { p.User = user; return p }

// EditParam is the payload for Edit. Image and Prompt are required;
// the optional mask marks the region to repaint.
type EditParam struct {
	Image     io.Reader
	ImageName string
	Mask      io.Reader
	MaskName  string
	Prompt    string

	N              int
	Size           string
	ResponseFormat string
	User           string
}

// NewEditParam returns an EditParam repainting image per prompt.
func NewEditParam(image io.Reader, imageName, prompt string) *EditParam {
	return &EditParam{Image: image, ImageName: imageName, Prompt: prompt}
}

func (p *EditParam) WithMask(mask io.Reader, name string) *EditParam {
	p.Mask = mask
	p.MaskName = name
	return p
}

func (p *EditParam) WithN(n int) *EditParam { p.N = n; return p }

func (p *EditParam) WithSize(size string) *EditParam { p.Size = size; return p }

func (p *EditParam) WithResponseFormat(format string) *EditParam { p.ResponseFormat = format; return p }

func (p *EditParam) WithUser(user string) *EditParam { p.User = user; return p }

// VariationParam is the payload for Variation. Image is required.
type VariationParam struct {
	Image     io.Reader
	ImageName string

	N              int
	Size           string
	ResponseFormat string
	User           string
}

// NewVariationParam returns a VariationParam for the given image.
func NewVariationParam(image io.Reader, imageName string) *VariationParam {
	return &VariationParam{Image: image, ImageName: imageName}
}

func (p *VariationParam) WithN(n int) *VariationParam { p.N = n; return p }

func (p *VariationParam) WithSize(size string) *VariationParam { p.Size = size; return p }

func (p *VariationParam) WithResponseFormat(format string) *VariationParam {
	p.ResponseFormat = format
	return p
}

func (p *VariationParam) WithUser(user string) *VariationParam { p.User = user; return p }

// Image is the response for all three operations.
type Image struct {
	Created int64  `json:"created"`
	Data    []Data `json:"data"`
}

// Data is one produced image, as a URL or inline base64 depending on
// the requested response format.
type Data struct {
	URL     string `json:"url,omitempty"`
	B64JSON string `json:"b64_json,omitempty"`
}

// Generate renders images from a text prompt.
func Generate(ctx context.Context, c *openai.Client, p *GenerateParam) (*Image, error) {
	if p == nil || p.Prompt == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "image: prompt is required"}
	}
	return openai.Post[Image](ctx, c, "images/generations", p)
}

// Edit repaints the masked region of an image per the prompt.
func Edit(ctx context.Context, c *openai.Client, p *EditParam) (*Image, error) {
	if p == nil || p.Image == nil {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "image: image is required"}
	}
	if p.Prompt == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "image: prompt is required"}
	}

	form := openai.NewForm().
		File("image", fileName(p.ImageName), p.Image).
		Field("prompt", p.Prompt)
	if p.Mask != nil {
		form.File("mask", fileName(p.MaskName), p.Mask)
	}
	applyCommon(form, p.N, p.Size, p.ResponseFormat, p.User)

	return openai.PostForm[Image](ctx, c, "images/edits", form)
}

// Variation renders variations of an existing image.
func Variation(ctx context.Context, c *openai.Client, p *VariationParam) (*Image, error) {
	if p == nil || p.Image == nil {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "image: image is required"}
	}

	form := openai.NewForm().
		File("image", fileName(p.ImageName), p.Image)
	applyCommon(form, p.N, p.Size, p.ResponseFormat, p.User)

	return openai.PostForm[Image](ctx, c, "images/variations", form)
}

func applyCommon(form *openai.Form, n int, size, format, user string) {
	if n > 0 {
		form.Field("n", strconv.Itoa(n))
	}
	if size != "" {
		form.Field("size", size)
	}
	if format != "" {
		form.Field("response_format", format)
	}
	if user != "" {
		form.Field("user", user)
	}
}

func fileName(name string) string {
	if name == "" {
		return "image.png"
	}
	return name
}
