package normalize

import (
	"fmt"

	"swinglab/internal/classify"
	"swinglab/pkg/contracts/domain"
)

// KinematicFrames converts the rows of a classified IK table into typed
// frames. Columns the schema does not know are preserved verbatim in the
// frame's Extras map.
func KinematicFrames(table domain.RawTable, det domain.DetectionResult) ([]domain.KinematicFrame, error) {
	if det.SchemaKind != domain.SchemaKinematics {
		return nil, fmt.Errorf("%w: kinematics normalizer got %s", ErrWrongSchema, det.SchemaKind)
	}

	frames := make([]domain.KinematicFrame, 0, len(table.Rows))
	for _, row := range table.Rows {
		f := domain.KinematicFrame{
			MovementID:            cellString(row, det.ColumnMap, classify.FieldMovementID),
			TimeSec:               optNumber(row, det.ColumnMap, classify.FieldTime),
			PelvisAngularVelo:     optNumber(row, det.ColumnMap, classify.FieldPelvisAngularVelo),
			TorsoAngularVelo:      optNumber(row, det.ColumnMap, classify.FieldTorsoAngularVelo),
			HipShoulderSeparation: optNumber(row, det.ColumnMap, classify.FieldHipShoulderSeparation),
			LeadKneeExtensionVelo: optNumber(row, det.ColumnMap, classify.FieldLeadKneeExtensionVelo),
			PostureTilt:           optNumber(row, det.ColumnMap, classify.FieldPostureTilt),
			Extras:                extras(row, det.ColumnMap),
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// EnergyFrames converts the rows of a classified ME table into typed
// frames.
func EnergyFrames(table domain.RawTable, det domain.DetectionResult) ([]domain.EnergyFrame, error) {
	if det.SchemaKind != domain.SchemaEnergyTransfer {
		return nil, fmt.Errorf("%w: energy normalizer got %s", ErrWrongSchema, det.SchemaKind)
	}

	frames := make([]domain.EnergyFrame, 0, len(table.Rows))
	for _, row := range table.Rows {
		f := domain.EnergyFrame{
			MovementID:         cellString(row, det.ColumnMap, classify.FieldMovementID),
			TimeSec:            optNumber(row, det.ColumnMap, classify.FieldTime),
			PelvisEnergy:       optNumber(row, det.ColumnMap, classify.FieldPelvisEnergy),
			TorsoEnergy:        optNumber(row, det.ColumnMap, classify.FieldTorsoEnergy),
			ArmEnergy:          optNumber(row, det.ColumnMap, classify.FieldArmEnergy),
			BatEnergy:          optNumber(row, det.ColumnMap, classify.FieldBatEnergy),
			TransferEfficiency: optNumber(row, det.ColumnMap, classify.FieldTransferEfficiency),
			PeakBatPower:       optNumber(row, det.ColumnMap, classify.FieldPeakBatPower),
			BatSpeedMph:        optNumber(row, det.ColumnMap, classify.FieldBatSpeed),
			Extras:             extras(row, det.ColumnMap),
		}
		frames = append(frames, f)
	}
	return frames, nil
}

func optNumber(row map[string]string, columnMap map[string]string, field string) *float64 {
	if v, ok := cellNumber(row, columnMap, field); ok {
		return &v
	}
	return nil
}

// extras collects the columns the column map did not consume, so
// vendor-specific data survives normalization without becoming reachable by
// arbitrary key on the typed frame.
func extras(row domain.Row, columnMap map[string]string) map[string]string {
	consumed := make(map[string]bool, len(columnMap))
	for _, header := range columnMap {
		consumed[header] = true
	}

	var out map[string]string
	for header, value := range row {
		if consumed[header] || value == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[header] = value
	}
	return out
}
