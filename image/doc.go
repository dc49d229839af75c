// Package image renders, edits, and varies images.
//
// Generate takes a text prompt and is a plain JSON call; Edit and
// Variation upload image files as multipart forms. Example:
//
//	img, err := image.Generate(ctx, client,
//		image.NewGenerateParam("a watercolor lighthouse").
//			WithSize(image.Size512))
//	if err != nil {
//		return err
//	}
//	fmt.Println(img.Data[0].URL)
package image
