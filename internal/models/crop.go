package models

import "time"

type CropStage string

const (
	StagePlanning  CropStage = "Planejamento"
	StagePlanting  CropStage = "Plantio"
	StageGrowth    CropStage = "Crescimento"
	StageFlowering CropStage = "Floração"
	StageHarvest   CropStage = "Colheita"
)

// progressByStage: progresso é sempre derivado do estágio, nunca editado à parte.
var progressByStage = map[CropStage]int{
	StagePlanning:  0,
	StagePlanting:  25,
	StageGrowth:    50,
	StageFlowering: 75,
	StageHarvest:   100,
}

// ProgressForStage resolve o percentual fixo de um estágio. Estágio fora da
// enumeração é erro de validação, não default silencioso.
func ProgressForStage(stage CropStage) (int, error) {
	p, ok := progressByStage[stage]
	if !ok {
		return 0, &ValidationError{Field: "stage", Message: "estágio inválido: " + string(stage)}
	}
	return p, nil
}

type Crop struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"index;not null"`
	Name          string    `gorm:"size:100;not null"`
	Area          float64   `gorm:"not null"` // hectares
	PlantingDate  time.Time `gorm:"not null"`
	HarvestDate   time.Time `gorm:"not null"`
	Stage         CropStage `gorm:"size:20;not null"`
	Progress      int       `gorm:"not null"` // derivado de Stage na escrita
	ExpectedYield string    `gorm:"size:100"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
