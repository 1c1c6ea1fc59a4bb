package assets

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbModelID - модель сферы, общая для всех орбов. Цвет и размер задаются при отрисовке.
const OrbModelID = "orb"

// ModelManager управляет созданием, кэшированием и выгрузкой 3D-моделей.
// Работает только при открытом окне raylib.
type ModelManager struct {
	models map[string]rl.Model
}

// NewModelManager создает новый экземпляр ModelManager.
func NewModelManager() *ModelManager {
	return &ModelManager{
		models: make(map[string]rl.Model),
	}
}

// LoadSphere безопасно строит сферу единичного масштаба и кладёт её в кэш.
// Паника raylib превращается в ошибку.
func (m *ModelManager) LoadSphere(id string, radius float32, rings, slices int) (err error) {
	if _, ok := m.models[id]; ok {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("raylib panicked while building model %q: %v", id, r)
		}
	}()

	mesh := rl.GenMeshSphere(radius, rings, slices)
	if mesh.VertexCount == 0 {
		return fmt.Errorf("model %q: empty mesh", id)
	}
	model := rl.LoadModelFromMesh(mesh)
	if model.MeshCount == 0 {
		return fmt.Errorf("model %q: failed to upload mesh", id)
	}

	m.models[id] = model
	log.Printf("Successfully built model %s (%d vertices)", id, mesh.VertexCount)
	return nil
}

// GetModel возвращает модель по ID.
func (m *ModelManager) GetModel(id string) (rl.Model, bool) {
	model, ok := m.models[id]
	return model, ok
}

// Len возвращает число загруженных моделей.
func (m *ModelManager) Len() int {
	return len(m.models)
}

// Cleanup выгружает все загруженные модели.
func (m *ModelManager) Cleanup() {
	for id, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, id)
	}
	log.Println("All models unloaded.")
}
