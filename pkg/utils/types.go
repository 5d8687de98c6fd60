package utils

import "time"

/**************************************************************************************************
** TImage represents an immutable metadata snapshot of a single image file. It is built once
** by the exifmeta reader and passed by value through the conversion pipeline; nothing in the
** core mutates it.
**
** Optional attributes use pointers: nil means the attribute is absent from the file, which is
** distinct from an attribute that is present but empty.
**
** Invariant: Basename + Extension == Filename (Extension keeps its leading dot).
**************************************************************************************************/
type TImage struct {
	Path      string `json:"path"`      // Path on disk as given by the caller
	Filename  string `json:"filename"`  // File name with extension
	Basename  string `json:"basename"`  // File name without extension
	Extension string `json:"extension"` // Extension including the leading dot

	DateTaken   *time.Time `json:"dateTaken,omitempty"`   // EXIF capture timestamp
	CameraMaker *string    `json:"cameraMaker,omitempty"` // EXIF Make
	CameraModel *string    `json:"cameraModel,omitempty"` // EXIF Model

	// Display-only attributes for the inspect view. The conversion core never reads these.
	FStop        *string `json:"fStop,omitempty"`        // e.g. "f/2.8"
	ExposureTime *string `json:"exposureTime,omitempty"` // e.g. "1/250 s"
	ISO          *string `json:"iso,omitempty"`          // e.g. "200"
	FocalLength  *string `json:"focalLength,omitempty"`  // e.g. "50 mm"
	Resolution   *string `json:"resolution,omitempty"`   // e.g. "4000x3000"
}

/**************************************************************************************************
** TConversion is the per-image output of the conversion orchestrator. A nil field means
** "no change to apply for that field": the caller keeps the current filename and does not
** touch the EXIF date. Results are consumed immediately by the save step, never persisted.
**************************************************************************************************/
type TConversion struct {
	NewFilename  *string    `json:"newFilename,omitempty"`  // New name with extension, nil = keep current
	NewDateTaken *time.Time `json:"newDateTaken,omitempty"` // New capture timestamp, nil = keep current
}

/**************************************************************************************************
** TField is a single labeled attribute for display purposes (the inspect command). Value is
** the human-readable formatted string, empty when the attribute is absent.
**************************************************************************************************/
type TField struct {
	Title string `json:"title"`
	Value string `json:"value"`
}
