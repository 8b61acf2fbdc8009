package payload

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["session", "terrain", "avatar"],
  "properties": {
    "session": {"type": "string", "minLength": 1},
    "terrain": {
      "type": "object",
      "required": ["size", "spacing"],
      "properties": {
        "size": {"type": "integer", "minimum": 2},
        "spacing": {"type": "number", "exclusiveMinimum": 0},
        "heights": {"type": "array", "items": {"type": "number"}},
        "seed": {"type": "integer"},
        "amplitude": {"type": "number", "minimum": 0},
        "vegetation_density": {"type": "number", "minimum": 0}
      }
    },
    "avatar": {
      "type": "object",
      "required": ["spawn"],
      "properties": {
        "spawn": {
          "type": "object",
          "required": ["x", "y", "z"],
          "properties": {
            "x": {"type": "number"},
            "y": {"type": "number"},
            "z": {"type": "number"}
          }
        },
        "yaw": {"type": "number"}
      }
    },
    "clips": {"type": "array", "items": {"type": "string"}},
    "script": {"type": "string"}
  }
}`
