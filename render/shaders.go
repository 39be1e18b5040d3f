package render

// Attribute locations follow terrain.VertexSchema.
const terrainVertexShader = `
#version 330 core

layout (location = 0) in vec3 position;
layout (location = 1) in vec3 normal;
layout (location = 2) in vec3 diffuse;
layout (location = 3) in vec3 ambient;
layout (location = 4) in vec3 specular;
layout (location = 5) in float shininess;
layout (location = 6) in vec2 uv;

uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;

out vec3 fragPos;
out vec3 fragNormal;
out vec3 fragDiffuse;
out vec3 fragAmbient;
out vec3 fragSpecular;
out float fragShininess;
out vec2 fragUV;

void main() {
    vec4 world = model * vec4(position, 1.0);
    fragPos = world.xyz;
    fragNormal = mat3(model) * normal;
    fragDiffuse = diffuse;
    fragAmbient = ambient;
    fragSpecular = specular;
    fragShininess = shininess;
    fragUV = uv;
    gl_Position = projection * view * world;
}
`

const terrainFragmentShader = `
#version 330 core

in vec3 fragPos;
in vec3 fragNormal;
in vec3 fragDiffuse;
in vec3 fragAmbient;
in vec3 fragSpecular;
in float fragShininess;
in vec2 fragUV;

uniform vec3 lightDir;
uniform vec3 viewPos;
uniform bool useTexture;
uniform bool wireframe;
uniform sampler2D detail;

out vec4 FragColor;

void main() {
    if (wireframe) {
        FragColor = vec4(0.0, 0.0, 0.0, 1.0);
        return;
    }

    vec3 n = normalize(fragNormal);
    vec3 l = normalize(-lightDir);
    vec3 v = normalize(viewPos - fragPos);
    vec3 h = normalize(l + v);

    vec3 base = fragDiffuse;
    if (useTexture) {
        base *= texture(detail, fragUV).rgb;
    }

    float diff = max(dot(n, l), 0.0);
    float spec = pow(max(dot(n, h), 0.0), max(fragShininess, 1.0));

    vec3 color = fragAmbient + base * diff + fragSpecular * spec;
    FragColor = vec4(color, 1.0);
}
`

const skyVertexShader = `
#version 330 core

layout (location = 0) in vec3 position;

uniform mat4 projection;
uniform mat4 view;

out vec3 dir;

void main() {
    dir = position;
    mat4 rotation = mat4(mat3(view));
    vec4 pos = projection * rotation * vec4(position, 1.0);
    gl_Position = pos.xyww;
}
`

const skyFragmentShader = `
#version 330 core

in vec3 dir;

uniform vec3 horizon;
uniform vec3 zenith;

out vec4 FragColor;

void main() {
    float t = clamp(normalize(dir).y * 0.5 + 0.5, 0.0, 1.0);
    FragColor = vec4(mix(horizon, zenith, t), 1.0);
}
`

const textVertexShader = `
#version 330 core

layout (location = 0) in vec3 position;
layout (location = 1) in vec2 uv;

uniform mat4 projection;
uniform mat4 model;

out vec2 TexCoord;

void main() {
    TexCoord = uv;
    gl_Position = projection * model * vec4(position, 1.0);
}
`

const textFragmentShader = `
#version 330 core

in vec2 TexCoord;

uniform sampler2D glyphs;

out vec4 FragColor;

void main() {
    FragColor = texture(glyphs, TexCoord);
}
`
