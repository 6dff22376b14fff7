package export

import (
	"fmt"
	"log"

	"github.com/tealeg/xlsx"

	"uninote-collector/internal/app/model"
)

func ToExcel(videos []model.VideoRecord, outputFilePath string) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Videos")
	if err != nil {
		log.Fatal(err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "Index"
	headerRow.AddCell().Value = "Video ID"
	headerRow.AddCell().Value = "Title"
	headerRow.AddCell().Value = "Subject"
	headerRow.AddCell().Value = "Difficulty"
	headerRow.AddCell().Value = "Source"
	headerRow.AddCell().Value = "Duration (s)"
	headerRow.AddCell().Value = "Upload Date"
	headerRow.AddCell().Value = "Uploader"
	headerRow.AddCell().Value = "Manual Subtitles"
	headerRow.AddCell().Value = "Needs Whisper"
	headerRow.AddCell().Value = "URL"

	for _, v := range videos {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(v.VideoIndex)
		row.AddCell().Value = v.VideoID
		row.AddCell().Value = v.Title
		row.AddCell().Value = v.Subject
		row.AddCell().Value = v.Difficulty
		row.AddCell().Value = v.Source
		row.AddCell().Value = fmt.Sprint(v.Duration)
		row.AddCell().Value = v.UploadDate
		row.AddCell().Value = v.Uploader
		row.AddCell().Value = fmt.Sprintf("%v", v.HasManualSubtitles)
		row.AddCell().Value = fmt.Sprintf("%v", v.NeedsWhisperTranscription)
		row.AddCell().Value = v.URL
	}

	err = file.Save(outputFilePath)
	if err != nil {
		log.Fatal(err)
	}
}
