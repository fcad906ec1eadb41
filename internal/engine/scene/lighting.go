package scene

import (
	"github.com/Faultbox/wobble/internal/config"
	"github.com/Faultbox/wobble/pkg/math"
)

// Texture units the material samplers read from.
const (
	DiffuseUnit  = 0
	SpecularUnit = 1
)

// uniformSetter is the part of *shader.Program the lighting setup needs.
type uniformSetter interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v math.Vec3)
}

// applyLighting pushes the material, light and viewer uniforms. They stay
// constant for the life of the scene, so this runs once after linking.
func applyLighting(u uniformSetter, cfg config.SceneConfig) {
	u.SetInt("material.diffuse", DiffuseUnit)
	u.SetInt("material.specular", SpecularUnit)
	u.SetVec3("material.specularTint", cfg.Material.SpecularTint)
	u.SetFloat("material.shininess", cfg.Material.Shininess)

	u.SetVec3("light.position", cfg.Light.Position)
	u.SetFloat("light.constant", cfg.Light.Constant)
	u.SetFloat("light.linear", cfg.Light.Linear)
	u.SetFloat("light.quadratic", cfg.Light.Quadratic)
	u.SetVec3("light.ambient", cfg.Light.Ambient)
	u.SetVec3("light.diffuse", cfg.Light.Diffuse)
	u.SetVec3("light.specular", cfg.Light.Specular)

	u.SetVec3("viewPos", cfg.ViewPos)
}
