package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

const (
	builtinGroup = "Built-in Scenes"
	modelGroup   = "Models"
	modelPrefix  = "model:"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`                 // Unique identifier, passed to Load
	Name        string `json:"name"`               // Scene name
	DisplayName string `json:"displayName"`        // UI display name
	Description string `json:"description"`        // Optional description
	Group       string `json:"group"`              // Grouping category
	Type        string `json:"type"`               // "builtin" or "model"
	FilePath    string `json:"filePath,omitempty"` // Path to the model file (model type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete scene listing
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// ListBuiltinScenes returns the built-in presets in name order
func ListBuiltinScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		entry := builtins[name]
		scenes = append(scenes, SceneInfo{
			ID:          name,
			Name:        entry.displayName,
			DisplayName: entry.displayName,
			Description: entry.description,
			Group:       builtinGroup,
			Type:        "builtin",
		})
	}
	return scenes
}

// ListModelScenes scans dir for model files. A missing directory is not an error.
func ListModelScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan models directory: %w", err)
	}

	var scenes []SceneInfo
	for _, entry := range entries {
		if entry.IsDir() || !loaders.IsModelFile(entry.Name()) {
			continue
		}
		info, err := ParseModelMetadata(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ParseModelMetadata builds scene info for a model file. PLY headers may carry
// "comment Scene:", "comment Description:" and "comment Group:" lines; other
// formats use values derived from the file name.
func ParseModelMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:          modelSceneID(filename),
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       modelGroup,
		Type:        "model",
		FilePath:    filePath,
	}
	if !strings.EqualFold(filepath.Ext(filename), ".ply") {
		return info, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, fmt.Errorf("read model metadata: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "end_header" {
			break
		}
		content, ok := strings.CutPrefix(line, "comment ")
		if !ok {
			continue
		}
		if v, ok := strings.CutPrefix(content, "Scene:"); ok {
			info.Name = strings.TrimSpace(v)
			info.DisplayName = info.Name
		} else if v, ok := strings.CutPrefix(content, "Description:"); ok {
			info.Description = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(content, "Group:"); ok {
			info.Group = strings.TrimSpace(v)
		}
	}
	return info, scanner.Err()
}

// ListAllScenes returns built-in and model scenes, grouped by category with
// the built-in group first and the rest alphabetical
func ListAllScenes(modelsDir string) (ScenesResponse, error) {
	var response ScenesResponse

	models, err := ListModelScenes(modelsDir)
	if err != nil {
		return response, err
	}
	allScenes := append(ListBuiltinScenes(), models...)

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if builtInGroup, exists := groupMap[builtinGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{Name: builtinGroup, Scenes: builtInGroup})
	}
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}
	return response, nil
}

// Load builds a scene by ID: a built-in name, or "model:<file>" for a file in
// modelsDir
func Load(id, modelsDir string) (*Preset, error) {
	file, isModel := strings.CutPrefix(id, modelPrefix)
	if !isModel {
		return Builtin(id)
	}
	if file == "" || file != filepath.Base(file) {
		return nil, core.InvalidArgf("invalid model name %q", file)
	}
	return NewModelScene(filepath.Join(modelsDir, file))
}

// titleCase converts a filename-style string to title case
// e.g., "stanford-bunny" -> "Stanford Bunny"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
