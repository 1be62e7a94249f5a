package model

// Environment names the deployment environment.
type Environment string

const EnvironmentProduction Environment = "production"
